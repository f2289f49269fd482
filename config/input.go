package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPause
	ActionDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding is the set of keys and pad buttons that trigger one action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func bind(keys []ebiten.Key, buttons ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: keys, StandardGamepadButtons: buttons}
}

func init() {
	// Arrows and WASD walk the pig and move through menus alike.
	// The left stick is merged in by the input system.
	left := bind([]ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, ebiten.StandardGamepadButtonLeftLeft)
	right := bind([]ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, ebiten.StandardGamepadButtonLeftRight)
	up := bind([]ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, ebiten.StandardGamepadButtonLeftTop)
	down := bind([]ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, ebiten.StandardGamepadButtonLeftBottom)

	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  left,
			ActionMoveRight: right,
			ActionMoveUp:    up,
			ActionMoveDown:  down,
			ActionMenuLeft:  left,
			ActionMenuRight: right,
			ActionMenuUp:    up,
			ActionMenuDown:  down,

			// Start / Options
			ActionPause: bind([]ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}, ebiten.StandardGamepadButtonCenterRight),
			ActionDebug: bind([]ebiten.Key{ebiten.KeyF3}),
			// A / Cross
			ActionMenuSelect: bind([]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, ebiten.StandardGamepadButtonRightBottom),
			// B / Circle
			ActionMenuBack: bind([]ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}, ebiten.StandardGamepadButtonRightRight),
		},
	}
}
