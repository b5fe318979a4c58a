package systems

import (
	"log"
	"sync"

	"github.com/automoto/cutball/assets"
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, cfg.Audio.ResampleQuality)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: Failed to preload sound %s: %v", path, err)
		}
	}
}

// UpdateAudio plays the sound effects queued since the last tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, req := range audioData.PendingSFX {
		playSFX(req)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(req components.SoundRequest) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[req.ID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path, req.DetuneCents)
	if err != nil {
		log.Printf("Warning: Failed to play sound %s: %v", path, err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[req.ID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	PlaySFXDetuned(e, sound, 0)
}

// PlaySFXDetuned queues a sound effect shifted by cents
func PlaySFXDetuned(e *ecs.ECS, sound cfg.SoundID, cents float64) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SoundRequest{
		ID:          sound,
		DetuneCents: cents,
	})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]components.SoundRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
