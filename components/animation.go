package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/pigem/assets/animations"
	"github.com/automoto/pigem/config"
)

// AnimationData drives a directional walk cycle. All directions share one
// frame counter, so turning shows the new sheet at the current frame.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CachedFrames     map[config.StateID]map[int]*ebiten.Image // Pre-calculated subimages keyed by sheet index
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
}

// SetSheet switches the sheet without touching the frame counter.
func (a *AnimationData) SetSheet(state config.StateID) {
	a.CurrentSheet = state
}

// Frame returns the image for the current sheet and frame, or nil when the
// sheet was not loaded.
func (a *AnimationData) Frame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	frames, ok := a.CachedFrames[a.CurrentSheet]
	if !ok {
		return nil
	}
	return frames[a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
