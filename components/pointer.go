package components

import (
	"github.com/automoto/cutball/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PointerData is the singleton holding swipe state.
type PointerData struct {
	Tracker gamemath.Tracker

	// LastSegment is the most recent attack ray, kept for inspect drawing.
	LastSegment gamemath.Segment
	HasSegment  bool

	// Events are the pointer moves collected this tick, in arrival order.
	Events []dmath.Vec2

	Touches    map[ebiten.TouchID]dmath.Vec2
	Mouse      dmath.Vec2
	MouseKnown bool
}

var Pointer = donburi.NewComponentType[PointerData]()
