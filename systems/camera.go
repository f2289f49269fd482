package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	"github.com/automoto/pigem/config"
	"github.com/automoto/pigem/gamemath"
	"github.com/automoto/pigem/tags"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	targetX, targetY, ok := cameraTarget(e)
	if !ok {
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera puts the camera on its target at once, used when a level starts.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	if x, y, ok := cameraTarget(e); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = x
		camera.Position.Y = y
	}
}

// cameraTarget is the pig's center, clamped so the viewport never shows
// outside the level.
func cameraTarget(e *ecs.ECS) (float64, float64, bool) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return 0, 0, false
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0, 0, false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || level.LevelData == nil {
		return 0, 0, false
	}

	obj := components.Object.Get(playerEntry)
	centerX := obj.X + obj.W/2
	centerY := obj.Y + obj.H/2

	x := gamemath.ClampCamera(centerX, float64(config.C.Width), float64(level.MapWidth))
	y := gamemath.ClampCamera(centerY, float64(config.C.Height), float64(level.MapHeight))
	return x, y, true
}

// WorldToScreen converts a world position to screen coordinates for the
// current camera.
func WorldToScreen(camera *components.CameraData, x, y float64) (float64, float64) {
	return x - camera.Position.X + float64(config.C.Width)/2, y - camera.Position.Y + float64(config.C.Height)/2
}
