package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/archetypes"
	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/tags"
)

// CreatePlayer spawns the pig centered on (x, y) with its sprite sheets loaded.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	animData := GenerateAnimations("player", cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	return SpawnPlayer(ecs, x, y, animData)
}

// SpawnPlayer spawns the pig centered on (x, y) with the given animation data.
func SpawnPlayer(ecs *ecs.ECS, x, y float64, animData *components.AnimationData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.FacingDown,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Animation.Set(player, animData)

	return player
}
