package ui

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/pigem/config"
)

// GameOverUI is the result panel shown over the game over image.
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlayAgain func()
	OnMainMenu  func()

	buttons []*widget.Button
	labels  []string

	titleFace  text.Face
	normalFace text.Face
}

// NewGameOverUI builds the panel for a finished round.
func NewGameOverUI(title string, lines []string, onPlayAgain, onMainMenu func()) *GameOverUI {
	gui := &GameOverUI{
		OnPlayAgain: onPlayAgain,
		OnMainMenu:  onMainMenu,
	}

	gui.loadFonts()
	gui.buildUI(title, lines)

	return gui
}

func (gui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	gui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.TitleFontSize,
	}
	gui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.MenuFontSize,
	}
}

func (gui *GameOverUI) buildUI(title string, lines []string) {
	// Root container lets the game over image show through.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &gui.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		)),
	))

	for _, line := range lines {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &gui.normalFace, &widget.LabelColor{
				Idle: cfg.GameOver.TextColor,
			}),
			widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			)),
		))
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	handlers := []func(){gui.OnPlayAgain, gui.OnMainMenu}
	for i, label := range cfg.GameOver.MenuOptions {
		if i >= len(handlers) {
			break
		}
		button := gui.newButton(label, handlers[i])
		gui.buttons = append(gui.buttons, button)
		gui.labels = append(gui.labels, label)
		buttons.AddChild(button)
	}
	panel.AddChild(buttons)

	rootContainer.AddChild(panel)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 44),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &gui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: cfg.White,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// Highlight marks the keyboard-selected button.
func (gui *GameOverUI) Highlight(index int) {
	for i, b := range gui.buttons {
		textWidget := b.Text()
		if textWidget == nil {
			continue
		}
		label := gui.labels[i]
		if i == index {
			label = "> " + label + " <"
		}
		textWidget.Label = label
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.GameOver.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.GameOver.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.GameOver.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.DarkPanel),
	}
}

// Update calls the UI's Update method
func (gui *GameOverUI) Update() {
	gui.UI.Update()
}
