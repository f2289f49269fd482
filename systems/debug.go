package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/fonts"
	"github.com/automoto/pigem/tags"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return cfg.UI.DebugColors["wall"]
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.UI.DebugColors["player"]
	case obj.HasTags(tags.ResolvApple):
		return cfg.UI.DebugColors["apple"]
	case obj.HasTags(tags.ResolvEdge):
		return cfg.UI.DebugColors["edge"]
	}
	return cfg.White
}

// DrawDebug outlines every collision box in view and prints the pig's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	view := cameraViewport(camera, screen)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !view.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			x, y := WorldToScreen(camera, obj.X, obj.Y)
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, debugColor(obj), false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	o := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	info := fmt.Sprintf("pos %.0f,%.0f  vel %.0f,%.0f  facing %s  cam %.0f,%.0f",
		o.X, o.Y, physics.SpeedX, physics.SpeedY, player.Facing, camera.Position.X, camera.Position.Y)
	text.Draw(screen, info, fonts.Small.Get(), 10, screen.Bounds().Dy()-10, cfg.White)
}
