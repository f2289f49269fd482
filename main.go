package main

import (
	"context"
	"flag"
	"image"
	"log"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/config"
	"github.com/automoto/pigem/fonts"
	"github.com/automoto/pigem/scenes"
	"github.com/automoto/pigem/systems"
	"github.com/automoto/pigem/telemetry"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g, config.Level.Default)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	config.LoadEnv()

	skipMenu := flag.Bool("skip-menu", config.Debug.SkipMenu, "start in the game, skipping the start screen")
	level := flag.String("level", config.Level.Default, "level to play")
	metricsAddr := flag.String("metrics-addr", config.Telemetry.Addr, "address for the telemetry server (empty disables it)")
	debug := flag.Bool("debug", config.Debug.Overlay, "draw collision boxes")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug
	config.Level.Default = *level
	config.Telemetry.Addr = *metricsAddr

	if levels := assets.ListLevels(); !slices.Contains(levels, config.Level.Default) {
		log.Fatalf("Unknown level %q, available: %v", config.Level.Default, levels)
	}

	if *metricsAddr != "" {
		srv := telemetry.Start(telemetry.Config{
			Addr:           config.Telemetry.Addr,
			RequestsPerSec: config.Telemetry.RequestsPerSec,
			Burst:          config.Telemetry.Burst,
			AllowedOrigins: config.Telemetry.AllowedOrigins,
			FeedBuffer:     config.Telemetry.FeedBuffer,
		})
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySavedSettingsGlobal(systems.LoadSettings())

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
