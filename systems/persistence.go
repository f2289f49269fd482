package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

const (
	settingsKey = "settings"
	scoresKey   = "scores"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// SavedScores holds best scores per level and lifetime totals.
type SavedScores struct {
	Best         map[string]int `json:"best"`
	RoundsPlayed int            `json:"roundsPlayed"`
	RoundsWon    int            `json:"roundsWon"`
	ApplesEaten  int            `json:"applesEaten"`
}

// itemStore is the part of gdata.Manager persistence uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pigem",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

func loadItem(key string, v any) bool {
	if store == nil {
		return false
	}

	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := store.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() *SavedSettings {
	var settings SavedSettings
	if !loadItem(settingsKey, &settings) {
		return nil
	}
	return &settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData
// component. Volumes are the ones shown, which unmuting restores.
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		MusicVolume: s.MusicVolume,
		SFXVolume:   s.SFXVolume,
		Muted:       s.Muted,
		Fullscreen:  s.Fullscreen,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the game systems and the
// settings menu of this world, if it has one. While muted the menu keeps
// showing the volumes that unmuting restores.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	ApplySavedSettingsGlobal(saved)

	if entry, ok := components.SettingsMenu.First(e.World); ok {
		settings := components.SettingsMenu.Get(entry)
		settings.MusicVolume = saved.MusicVolume
		settings.SFXVolume = saved.SFXVolume
		settings.Muted = saved.Muted
		settings.Fullscreen = saved.Fullscreen
		settings.PreMuteMusicVol = saved.MusicVolume
		settings.PreMuteSFXVol = saved.SFXVolume
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during initial game startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	if saved.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
	}

	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadScores returns the saved scores, or an empty record.
func LoadScores() *SavedScores {
	scores := &SavedScores{}
	loadItem(scoresKey, scores)
	if scores.Best == nil {
		scores.Best = make(map[string]int)
	}
	return scores
}

// BestScore returns the best saved score for a level.
func BestScore(levelName string) int {
	return LoadScores().Best[levelName]
}

// RecordRound adds a finished round to the saved scores and returns the
// updated record.
func RecordRound(round *components.RoundData) *SavedScores {
	scores := LoadScores()
	scores.RoundsPlayed++
	scores.ApplesEaten += round.Score
	if round.Outcome == cfg.OutcomeWon {
		scores.RoundsWon++
	}
	if round.Score > scores.Best[round.LevelName] {
		scores.Best[round.LevelName] = round.Score
	}
	_ = saveItem(scoresKey, scores)
	return scores
}
