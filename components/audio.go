package components

import (
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi"
)

// SoundRequest is a queued sound effect with an optional pitch offset.
type SoundRequest struct {
	ID          cfg.SoundID
	DetuneCents float64
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []SoundRequest
}

var Audio = donburi.NewComponentType[AudioData]()
