package systems

import (
	"log"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
)

// mixer is the process-wide audio state. Ebitengine allows one audio
// context, so music keeps playing across scene changes.
type mixer struct {
	once    sync.Once
	context *audio.Context
	loader  *assets.AudioLoader

	music    *audio.Player
	musicKey string

	musicVolume float64
	sfxVolume   float64

	// Fade out, counted in ticks.
	fadeLeft  int
	fadeTotal int
	fadeFrom  float64
}

var mix = &mixer{
	musicVolume: cfg.Audio.DefaultMusicVol,
	sfxVolume:   cfg.Audio.DefaultSFXVol,
}

func (m *mixer) init() {
	m.once.Do(func() {
		m.context = audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(m.context)
	})
}

func (m *mixer) fading() bool {
	return m.fadeLeft > 0
}

// stepFade lowers the music one tick further and stops it when the fade ends.
func (m *mixer) stepFade() {
	if !m.fading() {
		return
	}
	m.fadeLeft--
	if m.music == nil {
		return
	}
	if m.fadeTotal > 0 {
		m.music.SetVolume(m.fadeFrom * float64(m.fadeLeft) / float64(m.fadeTotal))
	}
	if m.fadeLeft == 0 {
		m.stopMusic()
	}
}

func (m *mixer) stopMusic() {
	if m.music != nil {
		_ = m.music.Close()
	}
	m.music = nil
	m.musicKey = ""
	m.fadeLeft = 0
}

func (m *mixer) playSFX(sound cfg.SoundID) {
	if m.sfxVolume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok {
		return
	}

	player, err := m.loader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	volume := m.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	mix.init()
	for _, path := range cfg.Sound.SFXPaths {
		if err := mix.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio advances the music fade and plays the sounds queued this tick.
// A sound queued several times in one tick plays once.
func UpdateAudio(e *ecs.ECS) {
	mix.init()
	mix.stepFade()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for i, sound := range audioData.PendingSFX {
		if slices.Contains(audioData.PendingSFX[:i], sound) {
			continue
		}
		mix.playSFX(sound)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlayMusic loops the track at path. A track that is already playing keeps
// going; one that is fading out starts over.
func PlayMusic(e *ecs.ECS, path string) {
	mix.init()
	if mix.musicKey == path && !mix.fading() {
		return
	}
	mix.stopMusic()

	player, err := mix.loader.LoadMusic(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	player.SetVolume(mix.musicVolume)
	player.Play()

	mix.music = player
	mix.musicKey = path
}

// FadeOutMusic fades the current track to silence over MusicFadeDuration ticks.
func FadeOutMusic(e *ecs.ECS) {
	if mix.music == nil {
		return
	}
	mix.fadeLeft = cfg.Audio.MusicFadeDuration
	mix.fadeTotal = cfg.Audio.MusicFadeDuration
	mix.fadeFrom = mix.musicVolume
}

func PauseMusic(e *ecs.ECS) {
	if mix.music != nil {
		mix.music.Pause()
	}
}

func ResumeMusic(e *ecs.ECS) {
	if mix.music != nil {
		mix.music.Play()
	}
}

// PlaySFX queues a sound effect to be played by UpdateAudio.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume sets the music volume (0.0 - 1.0). A running fade keeps
// its own volume curve.
func SetMusicVolume(volume float64) {
	mix.musicVolume = volume
	if mix.music != nil && !mix.fading() {
		mix.music.SetVolume(volume)
	}
}

// SetSFXVolume sets the sound effect volume (0.0 - 1.0).
func SetSFXVolume(volume float64) {
	mix.sfxVolume = volume
}

func GetMusicVolume() float64 {
	return mix.musicVolume
}

func GetSFXVolume() float64 {
	return mix.sfxVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
