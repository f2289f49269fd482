package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PickupEffectData animates an eaten apple popping off the map.
type PickupEffectData struct {
	Image *ebiten.Image
	X, Y  float64 // top-left of the apple tile
	Rise  *gween.Tween
	Scale *gween.Tween
	Fade  *gween.Tween

	OffsetY float32
	ScaleXY float32
	Alpha   float32
	Done    bool
}

var PickupEffect = donburi.NewComponentType[PickupEffectData]()
