package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"

	cfg "github.com/automoto/pigem/config"
)

// Position is the top-left world corner of a tile.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AppleEatenEvent is published once per apple the pig eats.
type AppleEatenEvent struct {
	Level     string   `json:"level"`
	Position  Position `json:"position"`
	Score     int      `json:"score"`
	Remaining int      `json:"remaining"`
}

// RoundEndedEvent is published when a round gets its outcome.
type RoundEndedEvent struct {
	Level   string           `json:"level"`
	Outcome cfg.RoundOutcome `json:"outcome"`
	Score   int              `json:"score"`
	Goal    int              `json:"goal"`
	Ticks   int              `json:"ticks"`
}

var (
	AppleEaten = events.NewEventType[AppleEatenEvent]()
	RoundEnded = events.NewEventType[RoundEndedEvent]()
)

// ProcessEvents delivers queued gameplay events to their subscribers.
func ProcessEvents(e *ecs.ECS) {
	AppleEaten.ProcessEvents(e.World)
	RoundEnded.ProcessEvents(e.World)
}
