package config

import "fmt"

// VariantID identifies one of the incremental prototypes
type VariantID string

const (
	VariantRect    VariantID = "rect"
	VariantCircle  VariantID = "circle"
	VariantPointer VariantID = "pointer"
	VariantPolish  VariantID = "polish"
)

// Variants lists the prototypes in the order they were built
var Variants = []VariantID{VariantRect, VariantCircle, VariantPointer, VariantPolish}

// Current is the variant last applied with ApplyVariant
var Current VariantID

// VariantPreset holds the settings a variant toggles on top of the defaults
type VariantPreset struct {
	Label      string
	Hitbox     HitboxKind
	Mouse      bool
	Decorated  bool
	Background bool
	Avatar     bool
	HitSound   bool
	MissSound  bool
	Offscreen  OffscreenPolicy
	CutHalves  bool
}

// VariantPresets maps each variant to its preset
var VariantPresets = map[VariantID]VariantPreset{
	VariantRect: {
		Label:     "Rect / touch",
		Hitbox:    HitboxRect,
		Offscreen: OffscreenAny,
	},
	VariantCircle: {
		Label:     "Circle / touch",
		Hitbox:    HitboxCircle,
		HitSound:  true,
		Offscreen: OffscreenAny,
	},
	VariantPointer: {
		Label:     "Circle / touch+mouse",
		Hitbox:    HitboxCircle,
		Mouse:     true,
		HitSound:  true,
		Offscreen: OffscreenBottom,
	},
	VariantPolish: {
		Label:      "Polish",
		Hitbox:     HitboxCircle,
		Mouse:      true,
		Decorated:  true,
		Background: true,
		Avatar:     true,
		HitSound:   true,
		MissSound:  true,
		Offscreen:  OffscreenBottom,
		CutHalves:  true,
	},
}

// ApplyVariant copies a variant preset into the global configuration
func ApplyVariant(id VariantID) error {
	preset, ok := VariantPresets[id]
	if !ok {
		return fmt.Errorf("unknown variant %q", id)
	}

	Ball.Hitbox = preset.Hitbox
	Ball.Decorated = preset.Decorated
	Pointer.Mouse = preset.Mouse
	Stage.Background = preset.Background
	Stage.Avatar = preset.Avatar
	Sound.HitEnabled = preset.HitSound
	Sound.MissEnabled = preset.MissSound
	Physics.Offscreen = preset.Offscreen
	Swipe.CutHalves = preset.CutHalves
	Current = id
	return nil
}

// NextVariant returns the variant after id, wrapping around
func NextVariant(id VariantID) VariantID {
	for i, v := range Variants {
		if v == id {
			return Variants[(i+1)%len(Variants)]
		}
	}
	return Variants[0]
}
