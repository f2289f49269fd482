package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/archetypes"
	"github.com/automoto/pigem/components"
)

// CreateRound starts score keeping for a level with goal apples.
func CreateRound(ecs *ecs.ECS, levelName string, goal int) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		LevelName: levelName,
		Goal:      goal,
	})
	return round
}
