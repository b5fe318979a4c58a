package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundMiss
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// ResampleQuality is passed to beep's resampler (1 = fastest, 6 = best)
	ResampleQuality int
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	HitEnabled        bool `yaml:"hitEnabled"`
	MissEnabled       bool `yaml:"missEnabled"`
}

var Audio = AudioConfig{
	SampleRate:      44100,
	DefaultSFXVol:   1.0,
	ResampleQuality: 3,
}

var Sound = SoundConfig{
	SFXPaths: map[SoundID]string{
		SoundHit:        "audio/sfx/hit.wav",
		SoundMiss:       "audio/sfx/explosion.wav",
		SoundMenuSelect: "audio/sfx/hit.wav",
	},
	VolumeMultipliers: map[SoundID]float64{
		SoundMiss:       0.8,
		SoundMenuSelect: 0.4,
	},
}
