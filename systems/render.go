package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	"github.com/automoto/pigem/tags"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Entities outside the viewport plus this margin are skipped.
const cullPadding = 64.0

type viewport struct {
	minX, minY, maxX, maxY float64
}

func cameraViewport(camera *components.CameraData, screen *ebiten.Image) viewport {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return viewport{
		minX: camera.Position.X - width/2 - cullPadding,
		maxX: camera.Position.X + width/2 + cullPadding,
		minY: camera.Position.Y - height/2 - cullPadding,
		maxY: camera.Position.Y + height/2 + cullPadding,
	}
}

func (v viewport) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

// DrawApples renders the apples still on the map.
func DrawApples(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	view := cameraViewport(camera, screen)

	tags.Apple.Each(ecs.World, func(e *donburi.Entry) {
		apple := components.Apple.Get(e)
		if apple.Image == nil {
			return
		}
		o := components.Object.Get(e)
		if !view.visible(o.X, o.Y, o.W, o.H) {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		x, y := WorldToScreen(camera, o.X, o.Y)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(apple.Image, drawOp)
	})
}

// DrawAnimated renders entities with an Animation component at their current
// frame, the sprite centered on the collision box.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	view := cameraViewport(camera, screen)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.visible(o.X, o.Y, o.W, o.H) {
			return
		}

		animData := components.Animation.Get(e)
		img := animData.Frame()
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight)/2)
		x, y := WorldToScreen(camera, o.X+o.W/2, o.Y+o.H/2)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}
