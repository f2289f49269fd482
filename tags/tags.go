package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Apple  = donburi.NewTag().SetName("Apple")
	Edge   = donburi.NewTag().SetName("Edge")
	Effect = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvApple  = "apple"
	ResolvEdge   = "edge"
)
