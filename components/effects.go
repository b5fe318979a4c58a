package components

import "github.com/yohamta/donburi"

// AutoDestroyData marks entities that should be destroyed after a duration or animation
type AutoDestroyData struct {
	FramesRemaining   int  // frames until destruction (-1 = use animation)
	DestroyOnAnimLoop bool // destroy when animation loops
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// VFXScaleData stores a fixed scale for VFX entities
type VFXScaleData struct {
	Scale float64 // uniform scale (1.0 = normal size)
}

var VFXScale = donburi.NewComponentType[VFXScaleData]()

// LifespanData removes an entity once Remaining reaches zero.
type LifespanData struct {
	Remaining float64 // seconds
	Total     float64
}

// Expired reports whether the lifespan has run out. The tolerance absorbs
// rounding from summing fixed ticks.
func (l *LifespanData) Expired() bool {
	return l.Remaining <= 1e-9
}

var Lifespan = donburi.NewComponentType[LifespanData]()

// ShrinkData scales an entity down by Rate*dt of its size each tick.
type ShrinkData struct {
	Scale float64
	Rate  float64
}

var Shrink = donburi.NewComponentType[ShrinkData]()
