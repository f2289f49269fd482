package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Apple = newArchetype(
		tags.Apple,
		components.Apple,
		components.Object,
	)
	Edge = newArchetype(
		tags.Edge,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Round = newArchetype(
		components.Round,
	)
	Camera = newArchetype(
		components.Camera,
	)
	PickupEffect = newArchetype(
		tags.Effect,
		components.PickupEffect,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
