package systems

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/fonts"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	if step := menuStep(e, input); step != 0 {
		settings.SelectedOption = cycle(settings.SelectedOption, step, numSettingsOptions)
	}

	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed || GetAction(input, cfg.ActionPause).JustPressed {
		closeSettings(e, settings)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		if !s.Muted {
			SetMusicVolume(s.MusicVolume)
		}
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		if !s.Muted {
			SetSFXVolume(s.SFXVolume)
		}
		// Preview at the new volume
		PlaySFX(e, cfg.SoundPickup)

	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	newIdx := findClosestStepIndex(current, steps) + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func toggleMute(s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		s.PreMuteMusicVol = s.MusicVolume
		s.PreMuteSFXVol = s.SFXVolume
		SetMusicVolume(0)
		SetSFXVolume(0)
		return
	}
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)
}

func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	drawCentered(screen, "SETTINGS", fonts.Title.Get(), int(width/2), 120, cfg.Menu.TextColorSelected)

	face := fonts.Menu.Get()
	itemStep := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	startY := (height - float64(numSettingsOptions)*itemStep) / 2

	for opt := components.SettingsOptMusicVolume; opt <= components.SettingsOptBack; opt++ {
		textColor := cfg.Pause.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		y := int(startY + float64(opt)*itemStep + cfg.Pause.MenuItemHeight)

		label, value := getOptionDisplay(settings, opt)
		if value == "" {
			drawCentered(screen, label, face, int(width/2), y, textColor)
			continue
		}
		drawShadowed(screen, label, face, int(width/2)-200, y, textColor, cfg.Shadow)
		drawShadowed(screen, value, face, int(width/2)+20, y, textColor, cfg.Shadow)
	}

	input := getOrCreateInput(e)
	drawCentered(screen, getSettingsHint(input.LastInputMethod), fonts.Small.Get(), int(width/2), int(height)-12, cfg.Pause.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	label := ""
	if int(opt) < len(cfg.SettingsMenu.Options) {
		label = cfg.SettingsMenu.Options[opt]
	}
	switch opt {
	case components.SettingsOptMusicVolume:
		return label, formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return label, formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return label, formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return label, formatToggle(s.Fullscreen)
	}
	return label, ""
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume*10 + 0.5)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		musicVol := GetMusicVolume()
		sfxVol := GetSFXVolume()
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption:  components.SettingsOptMusicVolume,
			MusicVolume:     musicVol,
			SFXVolume:       sfxVol,
			PreMuteMusicVol: musicVol,
			PreMuteSFXVol:   sfxVol,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu from a specific origin
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptMusicVolume

	if !settings.Muted {
		settings.MusicVolume = GetMusicVolume()
		settings.SFXVolume = GetSFXVolume()
	}
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
