package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawCentered draws str with its baseline at y, centered on cx.
func drawCentered(screen *ebiten.Image, str string, face font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(face, str).Round()
	text.Draw(screen, str, face, cx-w/2, y, clr)
}

// drawShadowed draws str with a one pixel drop shadow.
func drawShadowed(screen *ebiten.Image, str string, face font.Face, x, y int, clr, shadow color.Color) {
	text.Draw(screen, str, face, x+1, y+1, shadow)
	text.Draw(screen, str, face, x, y, clr)
}
