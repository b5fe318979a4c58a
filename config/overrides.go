package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the YAML layout. Sections point at the live globals so
// keys missing from the file keep their defaults.
type overrideFile struct {
	Variant string         `yaml:"variant"`
	Screen  *Config        `yaml:"screen"`
	Ball    *BallConfig    `yaml:"ball"`
	Swipe   *SwipeConfig   `yaml:"swipe"`
	Spawner *SpawnerConfig `yaml:"spawner"`
	Marker  *MarkerConfig  `yaml:"marker"`
	CutHalf *CutHalfConfig `yaml:"cutHalf"`
	Physics *PhysicsConfig `yaml:"physics"`
	Pointer *PointerConfig `yaml:"pointer"`
	Stage   *StageConfig   `yaml:"stage"`
	Sound   *SoundConfig   `yaml:"sound"`
}

// Load applies the startup configuration: the variant preset first, then the
// YAML file at path on top of it. Either may be empty.
func Load(variant VariantID, path string) error {
	if variant != "" {
		if err := ApplyVariant(variant); err != nil {
			return err
		}
	}
	if path != "" {
		return LoadOverrides(path)
	}
	return Validate()
}

// LoadOverrides reads a YAML file and applies it on top of the defaults
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := ApplyYAML(data); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}

// ApplyYAML applies YAML overrides. A "variant" key is applied first so the
// remaining keys can refine it.
func ApplyYAML(data []byte) error {
	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if head.Variant != "" {
		if err := ApplyVariant(VariantID(head.Variant)); err != nil {
			return err
		}
	}

	doc := overrideFile{
		Screen:  C,
		Ball:    &Ball,
		Swipe:   &Swipe,
		Spawner: &Spawner,
		Marker:  &Marker,
		CutHalf: &CutHalf,
		Physics: &Physics,
		Pointer: &Pointer,
		Stage:   &Stage,
		Sound:   &Sound,
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return Validate()
}

// Validate rejects configurations the simulation cannot run with
func Validate() error {
	switch {
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", C.Width, C.Height)
	case C.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", C.TPS)
	case Spawner.Interval <= 0:
		return fmt.Errorf("spawner interval must be positive, got %v", Spawner.Interval)
	case Swipe.RayLength <= 0:
		return fmt.Errorf("ray length must be positive, got %v", Swipe.RayLength)
	case Ball.Width <= 0 || Ball.Height <= 0 || Ball.Radius <= 0:
		return errors.New("ball dimensions must be positive")
	case Ball.Width*2 > float64(C.Width):
		return fmt.Errorf("ball width %v leaves no spawn range on a %d wide screen", Ball.Width, C.Width)
	case Marker.Lifespan <= 0:
		return fmt.Errorf("marker lifespan must be positive, got %v", Marker.Lifespan)
	case Swipe.CutPercent <= 0 || Swipe.CutPercent >= 1:
		return fmt.Errorf("cut percent must be in (0, 1), got %v", Swipe.CutPercent)
	}

	switch Ball.Hitbox {
	case HitboxRect, HitboxCircle:
	default:
		return fmt.Errorf("unknown hitbox kind %q", Ball.Hitbox)
	}
	switch Physics.Offscreen {
	case OffscreenBottom, OffscreenAny:
	default:
		return fmt.Errorf("unknown offscreen policy %q", Physics.Offscreen)
	}
	switch Swipe.BroadPhase {
	case BroadPhaseGrid, BroadPhaseLinear:
	default:
		return fmt.Errorf("unknown broad phase %q", Swipe.BroadPhase)
	}
	return nil
}
