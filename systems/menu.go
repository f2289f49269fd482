package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/fonts"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// A click anywhere starts the game, like the original start screen.
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createGameScene())
			return
		}

		if step := menuStep(e, input); step != 0 {
			menu.SelectedOption = cycle(menu.SelectedOption, step, int(components.MainMenuExit)+1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch menu.SelectedOption {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createGameScene())
			case components.MainMenuSettings:
				OpenSettings(e, false)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

var menuDrawOp = &ebiten.DrawImageOptions{}

// DrawMenu renders the start screen image with the menu on top.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawFullScreen(screen, assets.GetScreenImage(cfg.Menu.BackgroundImage), menuDrawOp)

	face := fonts.Menu.Get()
	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap) + cfg.Menu.MenuItemHeight

		textColor := cfg.Menu.TextColorNormal
		if components.MainMenuOption(i) == menu.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, option, face, int(width/2)+1, int(y)+1, cfg.Menu.ShadowColor)
		drawCentered(screen, option, face, int(width/2), int(y), textColor)
	}

	drawCentered(screen, cfg.Menu.Hint, fonts.Small.Get(), int(width/2), int(height)-12, cfg.Menu.TextColorNormal)
}

// drawFullScreen stretches img over the whole screen.
func drawFullScreen(screen, img *ebiten.Image, op *ebiten.DrawImageOptions) {
	if img == nil {
		return
	}
	op.GeoM.Reset()
	op.GeoM.Scale(
		float64(screen.Bounds().Dx())/float64(img.Bounds().Dx()),
		float64(screen.Bounds().Dy())/float64(img.Bounds().Dy()),
	)
	screen.DrawImage(img, op)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedOption: components.MainMenuStart,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
