package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/config"
	"github.com/automoto/pigem/fonts"
)

// ScoreText formats the HUD counter for a round.
func ScoreText(score, goal int) string {
	return fmt.Sprintf(config.HUD.ScoreFormat, score, goal)
}

// DrawHUD renders the apple counter in the top-left corner. It is drawn in
// screen space, so it stays put while the camera scrolls.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(ecs)
	if round == nil {
		return
	}

	drawShadowed(screen, ScoreText(round.Score, round.Goal), fonts.HUD.Get(),
		int(config.HUD.MarginX), int(config.HUD.MarginY),
		config.HUD.TextColor, config.HUD.ShadowColor)
}
