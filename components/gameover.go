package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/pigem/config"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption

	// Result of the round that just ended
	LevelName string
	Outcome   cfg.RoundOutcome
	Score     int
	Goal      int
	Best      int

	Fade  *gween.Tween
	Alpha float32
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
