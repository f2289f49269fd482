package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/pigem/config"
)

// RoundData tracks progress through the current level (singleton component).
type RoundData struct {
	LevelName string
	Score     int
	Goal      int
	Ticks     int
	Outcome   cfg.RoundOutcome
}

// Finished reports whether the round has an outcome.
func (r *RoundData) Finished() bool {
	return r.Outcome != cfg.OutcomeNone
}

// Remaining is the number of apples still on the map.
func (r *RoundData) Remaining() int {
	return r.Goal - r.Score
}

var Round = donburi.NewComponentType[RoundData]()
