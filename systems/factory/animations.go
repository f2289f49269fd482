package factory

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/assets/animations"
	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player") which maps to a set of animation definitions in config.
// Every sheet shares one Animation, so the frame carries over when the
// character turns.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := NewAnimationData(key, frameWidth, frameHeight)

	for state, def := range defs {
		frames := make(map[int]*ebiten.Image)
		step := def.Step
		if step <= 0 {
			step = 1
		}

		for sheetIndex := def.First; sheetIndex <= def.Last; sheetIndex += step {
			sx := sheetIndex * frameWidth
			srcRect := image.Rect(sx, 0, sx+frameWidth, frameHeight)
			// Use the global frame cache to avoid creating duplicate images
			frames[sheetIndex] = assets.GetFrame(key, state, sheetIndex, srcRect)
		}
		animData.CachedFrames[state] = frames
	}

	return animData
}

// NewAnimationData builds the walk cycle state without loading any images.
func NewAnimationData(key string, frameWidth, frameHeight int) *components.AnimationData {
	def := cfg.CharacterAnimations[key][cfg.WalkDown]
	if def.Speed == 0 {
		def = cfg.AnimationDef{First: 0, Last: cfg.Player.WalkFrames - 1, Step: 1, Speed: cfg.Player.AnimationTicks}
	}

	return &components.AnimationData{
		CurrentAnimation: animations.NewAnimation(def.First, def.Last, def.Step, def.Speed),
		CachedFrames:     make(map[cfg.StateID]map[int]*ebiten.Image),
		CurrentSheet:     cfg.FacingDown.WalkState(),
		FrameWidth:       frameWidth,
		FrameHeight:      frameHeight,
	}
}
