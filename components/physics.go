package components

import "github.com/yohamta/donburi"

// PhysicsData is the velocity of a kinematic body, in pixels per tick.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

// Moving reports whether the body has any velocity.
func (p *PhysicsData) Moving() bool {
	return p.SpeedX != 0 || p.SpeedY != 0
}

var Physics = donburi.NewComponentType[PhysicsData]()
