package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// deviceState is what the keyboard and gamepads report on one tick.
type deviceState struct {
	Actions  [cfg.ActionCount]bool
	Keyboard bool
	Gamepad  bool
}

// pollDevices reads the bound keys and buttons. Tests replace it.
var pollDevices = readDevices

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	devices := pollDevices()

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = devices.Actions

	// Gamepad takes priority if both used
	if devices.Gamepad {
		input.LastInputMethod = components.InputGamepad
	} else if devices.Keyboard {
		input.LastInputMethod = components.InputKeyboard
	}
}

func readDevices() deviceState {
	var d deviceState
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				d.Actions[actionID] = true
				d.Keyboard = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					d.Actions[actionID] = true
					d.Gamepad = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up, down := getAnalogStickState(gamepadIDs)
	merge := func(pressed bool, ids ...cfg.ActionID) {
		if !pressed {
			return
		}
		for _, id := range ids {
			d.Actions[id] = true
		}
		d.Gamepad = true
	}
	merge(left, cfg.ActionMoveLeft, cfg.ActionMenuLeft)
	merge(right, cfg.ActionMoveRight, cfg.ActionMenuRight)
	merge(up, cfg.ActionMoveUp, cfg.ActionMenuUp)
	merge(down, cfg.ActionMoveDown, cfg.ActionMenuDown)

	return d
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed.
// A new one starts from what is already held, so a key carried over from the
// previous scene is not a fresh press.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		down := pollDevices().Actions
		components.Input.SetValue(entry, components.InputData{
			Current:  down,
			Previous: down,
		})
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
