package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition
// capability. Mouse clicks are handled by the scene's UI buttons.
func NewUpdateGameOver(sceneChanger SceneChanger, createGameScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if gameOver.Fade != nil {
			gameOver.Alpha, _ = gameOver.Fade.Update(1)
		}

		if step := menuStep(e, input); step != 0 {
			gameOver.SelectedOption = cycle(gameOver.SelectedOption, step, int(components.GameOverMenu)+1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createGameScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

var gameOverDrawOp = &ebiten.DrawImageOptions{}

// DrawGameOver fades in the game over image behind the result panel.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	gameOverDrawOp.ColorScale.Reset()
	gameOverDrawOp.ColorScale.ScaleAlpha(gameOver.Alpha)
	drawFullScreen(screen, assets.GetScreenImage(cfg.GameOver.BackgroundImage), gameOverDrawOp)
}

// GameOverTitle is the headline for a round outcome.
func GameOverTitle(outcome cfg.RoundOutcome) string {
	if outcome == cfg.OutcomeWon {
		return cfg.GameOver.WonTitle
	}
	return cfg.GameOver.LostTitle
}

// GameOverLines are the result lines under the headline.
func GameOverLines(g *components.GameOverData) []string {
	return []string{
		fmt.Sprintf(cfg.GameOver.ScoreFormat, g.Score, g.Goal),
		fmt.Sprintf(cfg.GameOver.BestFormat, g.Best),
	}
}

// SetGameOverResult fills the game over state from a finished round.
func SetGameOverResult(e *ecs.ECS, round components.RoundData) {
	gameOver := GetOrCreateGameOver(e)
	gameOver.LevelName = round.LevelName
	gameOver.Outcome = round.Outcome
	gameOver.Score = round.Score
	gameOver.Goal = round.Goal
	gameOver.Best = BestScore(round.LevelName)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
			Fade:           gween.New(0, 1, float32(cfg.GameOver.FadeInTicks), ease.OutCubic),
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
