package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

// GetRound returns the round singleton, or nil before the level is built.
func GetRound(ecs *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}

// UpdateRound ends the round: stepping on an edge loses, an empty map wins.
// Both can happen on the same tick; the fall is checked first and wins.
func UpdateRound(ecs *ecs.ECS) {
	round := GetRound(ecs)
	if round == nil || round.Finished() {
		return
	}
	round.Ticks++

	switch {
	case TouchingEdge(ecs):
		finishRound(ecs, round, cfg.OutcomeLost)
	case round.Remaining() <= 0:
		finishRound(ecs, round, cfg.OutcomeWon)
	}
}

func finishRound(ecs *ecs.ECS, round *components.RoundData, outcome cfg.RoundOutcome) {
	round.Outcome = outcome

	if outcome == cfg.OutcomeWon {
		PlaySFX(ecs, cfg.SoundWin)
	} else {
		PlaySFX(ecs, cfg.SoundFall)
	}
	FadeOutMusic(ecs)
	RecordRound(round)

	RoundEnded.Publish(ecs.World, RoundEndedEvent{
		Level:   round.LevelName,
		Outcome: outcome,
		Score:   round.Score,
		Goal:    round.Goal,
		Ticks:   round.Ticks,
	})
}

// IsRoundFinished reports whether the current round has an outcome.
func IsRoundFinished(ecs *ecs.ECS) bool {
	round := GetRound(ecs)
	return round != nil && round.Finished()
}
