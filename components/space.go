package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision space every level object lives in.
var Space = donburi.NewComponentType[resolv.Space]()
