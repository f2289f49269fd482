package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

func keepVolumes(t *testing.T) {
	t.Helper()
	music, sfx := GetMusicVolume(), GetSFXVolume()
	t.Cleanup(func() {
		SetMusicVolume(music)
		SetSFXVolume(sfx)
	})
}

func TestAdjustVolumeStep(t *testing.T) {
	tests := []struct {
		current   float64
		direction int
		want      float64
	}{
		{0.5, +1, 0.75},
		{0.5, -1, 0.25},
		{1.0, +1, 1.0},
		{0, -1, 0},
		{0.6, +1, 0.75},
		{0.4, -1, 0.25},
	}
	for _, tt := range tests {
		if got := adjustVolumeStep(tt.current, tt.direction); got != tt.want {
			t.Errorf("adjustVolumeStep(%v, %d) = %v, want %v", tt.current, tt.direction, got, tt.want)
		}
	}
}

func TestFormatVolumeBar(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{0, "[..........] 0%"},
		{0.25, "[|||.......] 25%"},
		{0.5, "[|||||.....] 50%"},
		{1, "[||||||||||] 100%"},
	}
	for _, tt := range tests {
		if got := formatVolumeBar(tt.volume); got != tt.want {
			t.Errorf("formatVolumeBar(%v) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}

func TestToggleMuteRestoresVolumes(t *testing.T) {
	keepVolumes(t)

	s := &components.SettingsMenuData{MusicVolume: 0.75, SFXVolume: 0.5}
	toggleMute(s)
	if !s.Muted || GetMusicVolume() != 0 || GetSFXVolume() != 0 {
		t.Fatalf("muted = %v, volumes = %v/%v; want muted and silent", s.Muted, GetMusicVolume(), GetSFXVolume())
	}
	if s.MusicVolume != 0.75 || s.SFXVolume != 0.5 {
		t.Errorf("shown volumes changed to %v/%v while muting", s.MusicVolume, s.SFXVolume)
	}

	toggleMute(s)
	if s.Muted || GetMusicVolume() != 0.75 || GetSFXVolume() != 0.5 {
		t.Errorf("muted = %v, volumes = %v/%v; want 0.75/0.5 restored", s.Muted, GetMusicVolume(), GetSFXVolume())
	}
}

func TestSettingsNavigationWraps(t *testing.T) {
	useMemStore(t)
	keepVolumes(t)

	e := ecs.NewECS(donburi.NewWorld())
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true

	press := func(id cfg.ActionID) {
		input := getOrCreateInput(e)
		input.Previous = [cfg.ActionCount]bool{}
		input.Current = [cfg.ActionCount]bool{}
		input.Current[id] = true
		UpdateSettingsMenu(e)
	}

	press(cfg.ActionMenuUp)
	if settings.SelectedOption != components.SettingsOptBack {
		t.Errorf("up from the first option selected %v, want Back", settings.SelectedOption)
	}
	press(cfg.ActionMenuDown)
	if settings.SelectedOption != components.SettingsOptMusicVolume {
		t.Errorf("down from Back selected %v, want music volume", settings.SelectedOption)
	}

	settings.MusicVolume = 0.5
	press(cfg.ActionMenuRight)
	if settings.MusicVolume != 0.75 || GetMusicVolume() != 0.75 {
		t.Errorf("music volume = %v (global %v), want 0.75", settings.MusicVolume, GetMusicVolume())
	}

	press(cfg.ActionMenuBack)
	if settings.IsOpen {
		t.Error("settings still open after back")
	}
	if saved := LoadSettings(); saved == nil || saved.MusicVolume != 0.75 {
		t.Errorf("saved settings = %+v, want music volume 0.75", saved)
	}
}

func TestScoreText(t *testing.T) {
	if got := ScoreText(3, 7); got != "Picked: 3/7" {
		t.Errorf("ScoreText(3, 7) = %q", got)
	}
}

func TestGameOverTitle(t *testing.T) {
	if GameOverTitle(cfg.OutcomeWon) == GameOverTitle(cfg.OutcomeLost) {
		t.Error("won and lost rounds share a title")
	}
	if got := GameOverTitle(cfg.OutcomeLost); got != cfg.GameOver.LostTitle {
		t.Errorf("GameOverTitle(lost) = %q, want %q", got, cfg.GameOver.LostTitle)
	}
}

func TestSetGameOverResult(t *testing.T) {
	useMemStore(t)
	RecordRound(&components.RoundData{LevelName: "farm", Score: 6, Goal: 8, Outcome: cfg.OutcomeLost})

	e := ecs.NewECS(donburi.NewWorld())
	SetGameOverResult(e, components.RoundData{LevelName: "farm", Score: 2, Goal: 8, Outcome: cfg.OutcomeLost})

	g := GetOrCreateGameOver(e)
	if g.Outcome != cfg.OutcomeLost || g.Score != 2 || g.Goal != 8 || g.Best != 6 {
		t.Errorf("game over = %+v, want lost 2/8 with best 6", *g)
	}
	if g.SelectedOption != components.GameOverRetry {
		t.Errorf("selected %v, want retry", g.SelectedOption)
	}
	if lines := GameOverLines(g); len(lines) != 2 {
		t.Errorf("GameOverLines() = %q, want 2 lines", lines)
	}
}
