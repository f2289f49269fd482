package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/archetypes"
	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/components"
)

// CreateLevel loads an embedded level by name and builds its world.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	loader := assets.NewLevelLoader()
	level := loader.MustLoadLevel(assets.LevelPath(name))
	return PopulateLevel(ecs, &level)
}

// PopulateLevel creates the collision space, walls, apples, edges and round
// for an already loaded level.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})

	data := level.LevelData
	CreateSpace(ecs, data.MapWidth, data.MapHeight, data.TileWidth, data.TileHeight)

	for _, w := range data.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}

	for i, a := range data.Apples {
		CreateApple(ecs, i, a, appleImage(level, i))
	}

	for _, e := range data.Edges {
		CreateEdge(ecs, e.X, e.Y, e.W, e.H)
	}

	CreateRound(ecs, data.Name, data.Goal())

	return entry
}

// appleImage returns the baked image of apple i, or nil for headless levels.
func appleImage(level *assets.Level, i int) *ebiten.Image {
	if i < len(level.AppleImages) {
		return level.AppleImages[i]
	}
	return nil
}
