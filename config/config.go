package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // pixels per tick while a direction is held

	// Animation
	AnimationTicks int // ticks between walk-cycle frames
	WalkFrames     int

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// LevelConfig contains map loading configuration
type LevelConfig struct {
	Dir     string
	Default string
}

// HUDConfig contains heads-up display configuration
type HUDConfig struct {
	ScoreFormat string
	TextColor   color.RGBA
	ShadowColor color.RGBA
	FontSize    float64
	MarginX     float64
	MarginY     float64
}

// UIConfig contains shared UI configuration values
type UIConfig struct {
	// Debug colors
	DebugColors map[string]color.RGBA

	// Font sizes
	MenuFontSize  float64
	TitleFontSize float64
	DebugFontSize float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundImage   string
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ShadowColor       color.RGBA
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	Hint              string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundImage string
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	WonTitle        string
	LostTitle       string
	ScoreFormat     string
	BestFormat      string
	FadeInTicks     int
	MenuOptions     []string
}

// EffectsConfig contains pickup effect configuration
type EffectsConfig struct {
	PickupDuration float32 // ticks
	PickupRise     float32 // pixels the apple floats up while fading
	PickupScale    float32 // peak scale of the apple pop
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// TelemetryConfig contains the optional debug HTTP server configuration
type TelemetryConfig struct {
	Addr           string // empty disables the server
	RequestsPerSec float64
	Burst          int
	AllowedOrigins []string
	FeedBuffer     int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Draw collision boxes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Level LevelConfig
var HUD HUDConfig
var UI UIConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Effects EffectsConfig
var Camera CameraConfig
var Telemetry TelemetryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	PigPink      = color.RGBA{R: 240, G: 150, B: 170, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkPanel    = color.RGBA{R: 30, G: 20, B: 20, A: 200}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 768,
		Title:  "Pig'em all!",
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed: 5,

		// 0.1s per frame at 60 TPS
		AnimationTicks: 6,
		WalkFrames:     4,

		FrameWidth:      128,
		FrameHeight:     128,
		CollisionWidth:  40,
		CollisionHeight: 40,
	}

	Level = LevelConfig{
		Dir:     "levels",
		Default: "level01",
	}

	HUD = HUDConfig{
		ScoreFormat: "Picked: %d/%d",
		TextColor:   White,
		ShadowColor: Shadow,
		FontSize:    18,
		MarginX:     10,
		MarginY:     24,
	}

	UI = UIConfig{
		DebugColors: map[string]color.RGBA{
			"player": Green,
			"wall":   LightBlue,
			"apple":  Yellow,
			"edge":   Red,
		},
		MenuFontSize:  24,
		TitleFontSize: 40,
		DebugFontSize: 12,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Settings", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundImage:   "images/screens/start-screen.png",
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ShadowColor:       Shadow,
		MenuStartY:        520,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Settings", "Exit"},
		Hint:              "Click anywhere to start",
	}

	GameOver = GameOverConfig{
		BackgroundImage: "images/screens/game-over-screen.png",
		PanelColor:      DarkPanel,
		TitleColor:      PigPink,
		TextColor:       White,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   BrightOrange,
		WonTitle:        "ALL APPLES PIGGED!",
		LostTitle:       "YOU FELL OFF",
		ScoreFormat:     "Picked: %d/%d",
		BestFormat:      "Best: %d",
		FadeInTicks:     30,
		MenuOptions:     []string{"Play again", "Main menu"},
	}

	Effects = EffectsConfig{
		PickupDuration: 20,
		PickupRise:     24,
		PickupScale:    1.6,
	}

	// Camera snaps to the player like the original view.
	Camera = CameraConfig{
		FollowSmoothing: 1.0,
	}

	Telemetry = TelemetryConfig{
		Addr:           "",
		RequestsPerSec: 20,
		Burst:          40,
		AllowedOrigins: []string{"*"},
		FeedBuffer:     32,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}
}
