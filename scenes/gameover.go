package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/systems"
	"github.com/automoto/pigem/ui"
)

// GameOverScene displays the result of a round
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	round        components.RoundData
	gameOverUI   *ui.GameOverUI
	once         sync.Once

	shouldRetry bool
	shouldMenu  bool
}

// NewGameOverScene creates a new game over scene for a finished round
func NewGameOverScene(sc SceneChanger, round components.RoundData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, round: round}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	gs.gameOverUI.Highlight(int(systems.GetOrCreateGameOver(gs.ecs).SelectedOption))
	gs.gameOverUI.Update()

	// Handle scene transitions from the UI buttons
	if gs.shouldRetry {
		gs.sceneChanger.ChangeScene(gs.newGameScene())
		return
	}
	if gs.shouldMenu {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.gameOverUI.UI.Draw(screen)
}

func (gs *GameOverScene) newGameScene() interface{} {
	return NewGameScene(gs.sceneChanger, gs.round.LevelName)
}

func (gs *GameOverScene) configure() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, gs.newGameScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.SetGameOverResult(gs.ecs, gs.round)
	result := systems.GetOrCreateGameOver(gs.ecs)

	gs.gameOverUI = ui.NewGameOverUI(
		systems.GameOverTitle(result.Outcome),
		systems.GameOverLines(result),
		func() { gs.shouldRetry = true },
		func() { gs.shouldMenu = true },
	)
}
