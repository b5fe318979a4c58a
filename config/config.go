package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// HitboxKind selects the narrow-phase shape used for balls
type HitboxKind string

const (
	HitboxRect   HitboxKind = "rect"
	HitboxCircle HitboxKind = "circle"
)

// OffscreenPolicy decides when a ball counts as having left the screen
type OffscreenPolicy string

const (
	OffscreenBottom OffscreenPolicy = "bottom" // only falling past the bottom edge
	OffscreenAny    OffscreenPolicy = "any"    // leaving through any edge
)

// BroadPhaseKind selects how swipe candidates are gathered
type BroadPhaseKind string

const (
	BroadPhaseGrid   BroadPhaseKind = "grid"
	BroadPhaseLinear BroadPhaseKind = "linear"
)

// BallConfig contains ball body and hitbox configuration
type BallConfig struct {
	Width            float64    `yaml:"width"`
	Height           float64    `yaml:"height"`
	Radius           float64    `yaml:"radius"`
	CollisionPadding float64    `yaml:"collisionPadding"` // added to Radius for circle hitboxes
	Hitbox           HitboxKind `yaml:"hitbox"`
	JumpForce        float64    `yaml:"jumpForce"` // upward impulse in px/s applied on spawn
	Static           bool       `yaml:"static"`
	Decorated        bool       `yaml:"decorated"` // draw layered bean decoration on top of the ball
	SpinSpeed        float64    `yaml:"spinSpeed"` // radians per second for decoration layers
}

// SwipeConfig contains attack ray configuration
type SwipeConfig struct {
	RayLength   float64        `yaml:"rayLength"`
	BroadPhase  BroadPhaseKind `yaml:"broadPhase"`
	DetuneCents float64        `yaml:"detuneCents"` // hit sound detune is uniform in [-DetuneCents, DetuneCents]
	CutPercent  float64        `yaml:"cutPercent"`  // fraction of ball height kept by the top half
	CutHalves   bool           `yaml:"cutHalves"`
}

// SpawnerConfig contains ball spawn timer configuration
type SpawnerConfig struct {
	Interval float64 `yaml:"interval"` // seconds between spawns
	YJitter  float64 `yaml:"yJitter"`  // max vertical offset from mid-screen
	Seed     uint64  `yaml:"seed"`     // 0 = seed from time
}

// MarkerConfig contains hit marker configuration
type MarkerConfig struct {
	Radius     float64    `yaml:"radius"`
	Lifespan   float64    `yaml:"lifespan"`   // seconds
	ShrinkRate float64    `yaml:"shrinkRate"` // scale loses ShrinkRate*dt of itself each tick
	Color      color.RGBA `yaml:"-"`
}

// CutHalfConfig contains the sliced-ball visual configuration
type CutHalfConfig struct {
	Duration    float64 `yaml:"duration"`    // seconds until fully faded
	SplitSpeed  float64 `yaml:"splitSpeed"`  // px/s each half drifts away from the cut
	SpinSpeed   float64 `yaml:"spinSpeed"`   // radians per second
	GravityMult float64 `yaml:"gravityMult"` // fraction of world gravity applied to halves
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity         float64         `yaml:"gravity"` // px/s^2
	MaxFallSpeed    float64         `yaml:"maxFallSpeed"`
	Offscreen       OffscreenPolicy `yaml:"offscreen"`
	SpaceCellWidth  int             `yaml:"spaceCellWidth"`
	SpaceCellHeight int             `yaml:"spaceCellHeight"`
}

// PointerConfig selects which pointer sources emit move events
type PointerConfig struct {
	Touch               bool `yaml:"touch"`
	Mouse               bool `yaml:"mouse"`
	MouseRequiresButton bool `yaml:"mouseRequiresButton"`
}

// StageConfig contains decorative scene configuration
type StageConfig struct {
	Path       string `yaml:"path"`
	Background bool   `yaml:"background"`
	Avatar     bool   `yaml:"avatar"`
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
	RayColor        color.RGBA
	RayWidth        float32
	HitboxColor     color.RGBA
	ObjectColor     color.RGBA
	HUDMargin       int
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	Title           string
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip title screen and go directly to the arcade
	Inspect  bool // Draw attack ray, hitboxes and counters
}

// Global configuration instances
var C *Config
var Ball BallConfig
var Swipe SwipeConfig
var Spawner SpawnerConfig
var Marker MarkerConfig
var CutHalf CutHalfConfig
var Physics PhysicsConfig
var Pointer PointerConfig
var Stage StageConfig
var UI UIConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// DT returns the fixed simulation step in seconds
func DT() float64 {
	if C == nil || C.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  176,
		Height: 256,
		TPS:    60,
		Title:  "cutball",
	}

	Physics = PhysicsConfig{
		Gravity:         600,
		MaxFallSpeed:    900,
		Offscreen:       OffscreenBottom,
		SpaceCellWidth:  16,
		SpaceCellHeight: 16,
	}

	Ball = BallConfig{
		Width:            32,
		Height:           32,
		Radius:           16,
		CollisionPadding: 2,
		Hitbox:           HitboxCircle,
		JumpForce:        330,
		Static:           false,
		Decorated:        true,
		SpinSpeed:        1.5,
	}

	Swipe = SwipeConfig{
		RayLength:   16,
		BroadPhase:  BroadPhaseGrid,
		DetuneCents: 200,
		CutPercent:  0.35,
		CutHalves:   true,
	}

	Spawner = SpawnerConfig{
		Interval: 0.75,
		YJitter:  32,
	}

	Marker = MarkerConfig{
		Radius:     8,
		Lifespan:   0.5,
		ShrinkRate: 4,
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 200},
	}

	CutHalf = CutHalfConfig{
		Duration:    0.5,
		SplitSpeed:  60,
		SpinSpeed:   4,
		GravityMult: 0.5,
	}

	Pointer = PointerConfig{
		Touch:               true,
		Mouse:               true,
		MouseRequiresButton: true,
	}

	Stage = StageConfig{
		Path:       "stages/arcade.tmx",
		Background: true,
		Avatar:     true,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		HUDTextColor:    White,
		RayColor:        Red,
		RayWidth:        4,
		HitboxColor:     Green,
		ObjectColor:     Cyan,
		HUDMargin:       4,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    20,
		MenuItemGap:       8,
		MenuOptions:       []string{"Resume", "Title", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		ButtonIdle:      color.RGBA{R: 50, G: 60, B: 90, A: 255},
		ButtonHover:     color.RGBA{R: 70, G: 90, B: 130, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 45, B: 70, A: 255},
		Title:           "CUTBALL",
	}

	Debug = DebugConfig{
		SkipMenu: false,
		Inspect:  false,
	}

	ApplyVariant(VariantPolish)
}
