package config

// StateID identifies an animation sheet.
type StateID int

const (
	StateNone StateID = iota
	WalkUp
	WalkDown
	WalkLeft
	WalkRight
)

// StateToFileName maps a sheet to its file stem under images/spritesheets/<key>/.
var StateToFileName = map[StateID]string{
	WalkUp:    "walking-up",
	WalkDown:  "walking-down",
	WalkLeft:  "walking-left",
	WalkRight: "walking-right",
}

// Facing is the direction the pig looks in.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// WalkState returns the walk-cycle sheet for a facing direction.
func (f Facing) WalkState() StateID {
	switch f {
	case FacingUp:
		return WalkUp
	case FacingLeft:
		return WalkLeft
	case FacingRight:
		return WalkRight
	default:
		return WalkDown
	}
}

// RoundOutcome is how a round ended.
type RoundOutcome int

const (
	OutcomeNone RoundOutcome = iota
	OutcomeLost
	OutcomeWon
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "none"
	}
}

// MarshalText encodes the outcome by name in JSON feeds.
func (o RoundOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
