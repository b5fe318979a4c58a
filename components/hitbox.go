package components

import (
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi"
)

// HitboxData is the narrow-phase shape of a ball, centered on its object.
type HitboxData struct {
	Kind    cfg.HitboxKind
	Width   float64
	Height  float64
	Radius  float64
	Padding float64 // extra reach added to Radius for circle hitboxes
}

var Hitbox = donburi.NewComponentType[HitboxData]()
