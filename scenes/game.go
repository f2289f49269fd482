package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/systems"
	"github.com/automoto/pigem/systems/factory"
	"github.com/automoto/pigem/telemetry"
)

// GameScene is one round on one farm map.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	once         sync.Once
}

// NewGameScene creates a game scene for the named level.
func NewGameScene(sc SceneChanger, levelName string) *GameScene {
	return &GameScene{sceneChanger: sc, levelName: levelName}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	// Leave one tick after the round ends so its queued sound plays.
	ended := systems.IsRoundFinished(gs.ecs)

	start := time.Now()
	gs.ecs.Update()
	telemetry.ObserveUpdate(time.Since(start))

	if systems.GetOrCreatePause(gs.ecs).ToMainMenu {
		systems.FadeOutMusic(gs.ecs)
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		return
	}

	if ended {
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, *systems.GetRound(gs.ecs)))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadAllAnimations()

	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	gs.ecs = ecs.NewECS(donburi.NewWorld())
	addGameSystems(gs.ecs)

	// Add renderers
	gs.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawApples)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	subscribeTelemetry(gs.ecs.World)

	systems.GetOrCreateSettingsMenu(gs.ecs)
	systems.ApplySavedSettings(gs.ecs, systems.LoadSettings())

	// The level entity also creates the space, walls, apples, edges and round.
	level := factory.CreateLevel(gs.ecs, gs.levelName)
	levelData := components.Level.Get(level).CurrentLevel

	factory.CreateCamera(gs.ecs)

	spawn := levelData.SpawnPoint()
	factory.CreatePlayer(gs.ecs, spawn.X, spawn.Y)

	// Snap camera to the start position to prevent panning from (0,0)
	systems.SnapCamera(gs.ecs)

	telemetry.RecordRoundStart(levelData.Goal())
	systems.PlayMusic(gs.ecs, cfg.Sound.LevelMusic)
}

// addGameSystems registers audio ahead of the round's update.
func addGameSystems(e *ecs.ECS) {
	// Audio runs first, even when paused, for menu sounds.
	e.AddSystem(systems.UpdateAudio)
	for _, system := range systems.GameSystems() {
		e.AddSystem(system)
	}
}

func subscribeTelemetry(w donburi.World) {
	systems.AppleEaten.Subscribe(w, func(_ donburi.World, e systems.AppleEatenEvent) {
		telemetry.RecordApple(e.Remaining)
		telemetry.Publish("apple_eaten", e)
	})
	systems.RoundEnded.Subscribe(w, func(_ donburi.World, e systems.RoundEndedEvent) {
		telemetry.RecordRound(e.Outcome.String())
		telemetry.Publish("round_ended", e)
	})
}
