package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

// menuStep is -1 when up was pressed this tick, +1 for down and 0 otherwise.
// A move plays the navigate sound.
func menuStep(e *ecs.ECS, input *components.InputData) int {
	step := 0
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		step--
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		step++
	}
	if step != 0 {
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	return step
}

// cycle moves a menu option by step, wrapping within count options.
func cycle[T ~int](current T, step, count int) T {
	return T(((int(current)+step)%count + count) % count)
}
