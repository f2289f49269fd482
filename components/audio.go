package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/pigem/config"
)

// AudioData queues the sound effects a scene asked for this tick
// (singleton component). Playback state lives in the systems package and
// outlives scenes.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
