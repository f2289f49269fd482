package systems

import "github.com/yohamta/donburi/ecs"

// GameSystems is the per-tick update of a round, in order: input, pause,
// velocity and facing, movement against walls, walk cycle, apples, round
// result, bounds, camera. Audio is left to the caller.
func GameSystems() []ecs.System {
	return []ecs.System{
		// Systems that always run
		UpdateInput,
		UpdatePause,
		UpdateDebug,

		// Game systems wrapped with pause and round checks
		WithGameplayChecks(UpdatePlayer),
		WithGameplayChecks(UpdateMovement),
		WithGameplayChecks(UpdateAnimation),
		WithGameplayChecks(UpdateApples),
		WithGameplayChecks(UpdateRound),
		WithPauseCheck(UpdateBounds),
		WithPauseCheck(UpdateCamera),
		WithPauseCheck(UpdateEffects),

		// Systems that run even when paused
		UpdateSettingsMenu,
		ProcessEvents,
	}
}
