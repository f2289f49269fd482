package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
)

var levelDrawOp = &ebiten.DrawImageOptions{}

// DrawLevel draws the baked Ground and Walls layers through the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	levelDrawOp.GeoM.Reset()
	x, y := WorldToScreen(camera, 0, 0)
	levelDrawOp.GeoM.Translate(x, y)
	screen.DrawImage(levelData.CurrentLevel.Background, levelDrawOp)
}
