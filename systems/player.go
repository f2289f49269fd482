package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

// UpdatePlayer turns direction input into velocity and facing.
// Must run AFTER UpdateInput.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		applyMovementInput(input, components.Player.Get(entry), components.Physics.Get(entry))
	})
}

// applyMovementInput follows key events: a press sets that axis to full
// speed and turns the pig, a release of either key on an axis stops it.
// An axis with no key held is always stopped, so a release missed while
// paused cannot leave the pig walking.
func applyMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	speed := cfg.Player.Speed

	up := GetAction(input, cfg.ActionMoveUp)
	down := GetAction(input, cfg.ActionMoveDown)
	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)

	if up.JustReleased || down.JustReleased || (!up.Pressed && !down.Pressed) {
		physics.SpeedY = 0
	}
	if left.JustReleased || right.JustReleased || (!left.Pressed && !right.Pressed) {
		physics.SpeedX = 0
	}

	// Screen Y grows downward.
	if up.JustPressed {
		physics.SpeedY = -speed
		player.Facing = cfg.FacingUp
	}
	if down.JustPressed {
		physics.SpeedY = speed
		player.Facing = cfg.FacingDown
	}
	if left.JustPressed {
		physics.SpeedX = -speed
		player.Facing = cfg.FacingLeft
	}
	if right.JustPressed {
		physics.SpeedX = speed
		player.Facing = cfg.FacingRight
	}
}

// UpdateAnimation advances the walk cycle of every animated entity.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		moving := false
		if entry.HasComponent(components.Physics) {
			moving = components.Physics.Get(entry).Moving()
		}
		if entry.HasComponent(components.Player) {
			anim.SetSheet(components.Player.Get(entry).Facing.WalkState())
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(moving)
		}
	})
}
