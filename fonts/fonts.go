package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/pigem/config"
)

type FontName string

const (
	Regular FontName = "regular"
	HUD     FontName = "hud"
	Menu    FontName = "menu"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game draws with, from the Go
// Regular typeface.
func LoadDefaults() {
	LoadFont(Regular, goregular.TTF)
	LoadFontWithSize(HUD, goregular.TTF, config.HUD.FontSize)
	LoadFontWithSize(Menu, goregular.TTF, config.UI.MenuFontSize)
	LoadFontWithSize(Title, goregular.TTF, config.UI.TitleFontSize)
	LoadFontWithSize(Small, goregular.TTF, config.UI.DebugFontSize)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: Failed to parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
