package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AppleData is a collectable apple tile.
type AppleData struct {
	Index int           // position in the level's apple list
	Image *ebiten.Image // nil in headless worlds
}

var Apple = donburi.NewComponentType[AppleData]()
