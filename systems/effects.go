package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/archetypes"
	"github.com/automoto/pigem/components"
	"github.com/automoto/pigem/config"
)

var effectDrawOp = &ebiten.DrawImageOptions{}

// SpawnPickupEffect leaves a short-lived copy of an eaten apple that pops up
// and fades out. Durations are in ticks.
func SpawnPickupEffect(ecs *ecs.ECS, img *ebiten.Image, x, y float64) *donburi.Entry {
	e := archetypes.PickupEffect.Spawn(ecs)

	d := config.Effects.PickupDuration
	components.PickupEffect.SetValue(e, components.PickupEffectData{
		Image:   img,
		X:       x,
		Y:       y,
		Rise:    gween.New(0, config.Effects.PickupRise, d, ease.OutQuad),
		Scale:   gween.New(1, config.Effects.PickupScale, d, ease.OutBack),
		Fade:    gween.New(1, 0, d, ease.InQuad),
		ScaleXY: 1,
		Alpha:   1,
	})
	return e
}

// UpdateEffects steps every pickup tween by one tick and removes finished effects.
func UpdateEffects(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.PickupEffect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.PickupEffect.Get(e)

		fx.OffsetY, _ = fx.Rise.Update(1)
		fx.ScaleXY, _ = fx.Scale.Update(1)
		var finished bool
		fx.Alpha, finished = fx.Fade.Update(1)
		if finished {
			fx.Done = true
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		ecs.World.Remove(e.Entity())
	}
}

func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	components.PickupEffect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.PickupEffect.Get(e)
		if fx.Image == nil || fx.Done {
			return
		}
		w := float64(fx.Image.Bounds().Dx())
		h := float64(fx.Image.Bounds().Dy())

		// Scale around the tile center.
		effectDrawOp.GeoM.Reset()
		effectDrawOp.ColorScale.Reset()
		effectDrawOp.GeoM.Translate(-w/2, -h/2)
		effectDrawOp.GeoM.Scale(float64(fx.ScaleXY), float64(fx.ScaleXY))
		sx, sy := WorldToScreen(camera, fx.X+w/2, fx.Y+h/2-float64(fx.OffsetY))
		effectDrawOp.GeoM.Translate(sx, sy)
		effectDrawOp.ColorScale.ScaleAlpha(fx.Alpha)
		screen.DrawImage(fx.Image, effectDrawOp)
	})
}
