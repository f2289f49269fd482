package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"

	"github.com/automoto/pigem/config"
	"github.com/automoto/pigem/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// LevelFS exposes the embedded levels so tools and tests can parse them
// without ebiten.
func LevelFS() fs.FS {
	return assetFS
}

// Level is a parsed farm map plus its baked images.
type Level struct {
	*leveldata.LevelData
	Background *ebiten.Image
	// AppleImages holds one sub-image per entry of Apples, same order.
	AppleImages []*ebiten.Image
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%d/%d", dir, state, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(sheetPath(dir, state))

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

func sheetPath(dir string, state config.StateID) string {
	return fmt.Sprintf("images/spritesheets/%s/%s.png", dir, config.StateToFileName[state])
}

var (
	animationLoader = NewAnimationLoader()
)

func GetSheet(dir string, state config.StateID) *ebiten.Image {
	return animationLoader.MustLoadImage(sheetPath(dir, state))
}

func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, state, frameIndex, srcRect)
}

// GetScreenImage returns a full-screen image such as the start screen.
func GetScreenImage(imagePath string) *ebiten.Image {
	return animationLoader.MustLoadImage(imagePath)
}

// LevelPath returns the embedded path of a level by name.
func LevelPath(name string) string {
	return path.Join(config.Level.Dir, name+".tmx")
}

// ListLevels returns the names of every embedded level.
func ListLevels() []string {
	names, err := leveldata.ListLevels(assetFS, config.Level.Dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to list levels: %v", err))
	}
	return names
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	data, err := leveldata.FromMap(levelMap, leveldata.LevelName(levelPath))
	if err != nil {
		panic(err)
	}

	level := Level{
		LevelData:  data,
		Background: ebiten.NewImage(data.MapWidth, data.MapHeight),
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}

	for i, layer := range levelMap.Layers {
		if layer.Name == leveldata.LayerApples {
			level.AppleImages = l.sliceApples(renderer, i, data.Apples)
			continue
		}

		// Use "render" custom property to determine visibility
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		renderer.Clear()
		// Skip fully transparent layers
		if layer.Opacity <= 0 {
			layerImage.Deallocate()
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		level.Background.DrawImage(layerImage, op)
		layerImage.Deallocate()
	}

	return level
}

// sliceApples renders the Apples layer on its own and cuts one image per
// apple tile, so eaten apples can disappear from the map.
func (l *LevelLoader) sliceApples(renderer *render.Renderer, layerIndex int, apples []leveldata.Tile) []*ebiten.Image {
	images := make([]*ebiten.Image, len(apples))
	if len(apples) == 0 {
		return images
	}
	if err := renderer.RenderLayer(layerIndex); err != nil {
		log.Printf("Warning: Failed to render apples: %v", err)
		return images
	}
	layerImage := ebiten.NewImageFromImage(renderer.Result)
	renderer.Clear()

	for i, a := range apples {
		rect := image.Rect(int(a.X), int(a.Y), int(a.X+a.W), int(a.Y+a.H))
		images[i] = layerImage.SubImage(rect).(*ebiten.Image)
	}
	return images
}

// PreloadAllAnimations preloads all sprite sheets and frames to avoid lag on first render.
// This is especially important for WASM where texture uploads are slower.
func PreloadAllAnimations() {
	preloadCharacterAnimations("player", config.Player.FrameWidth, config.Player.FrameHeight)
}

// preloadCharacterAnimations preloads all animations for a character type
func preloadCharacterAnimations(key string, frameWidth, frameHeight int) {
	defs, ok := config.CharacterAnimations[key]
	if !ok {
		return
	}

	for state, def := range defs {
		_ = GetSheet(key, state)

		step := def.Step
		if step <= 0 {
			step = 1
		}
		for i := def.First; i <= def.Last; i += step {
			sx := i * frameWidth
			srcRect := image.Rect(sx, 0, sx+frameWidth, frameHeight)
			_ = GetFrame(key, state, i, srcRect)
		}
	}
}
