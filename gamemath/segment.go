// Package gamemath holds the geometry used by the swipe attack.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Segment is a directed line segment from P1 to P2.
type Segment struct {
	P1, P2 dmath.Vec2
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.P2.X-s.P1.X, s.P2.Y-s.P1.Y)
}

// Bounds returns the axis-aligned box covering the segment.
func (s Segment) Bounds() (x, y, w, h float64) {
	x = math.Min(s.P1.X, s.P2.X)
	y = math.Min(s.P1.Y, s.P2.Y)
	w = math.Abs(s.P2.X - s.P1.X)
	h = math.Abs(s.P2.Y - s.P1.Y)
	return x, y, w, h
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) dmath.Vec2 {
	return dmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Tracker turns successive pointer positions into attack segments.
//
// The zero value starts at the origin, so the first event measures its
// direction from (0, 0).
type Tracker struct {
	Last      dmath.Vec2
	Direction dmath.Vec2
	Angle     float64
}

// Move records pos as the latest pointer position and returns a segment of
// length rayLength starting at pos and pointing along the movement direction.
// A zero-length movement points along +X.
func (t *Tracker) Move(pos dmath.Vec2, rayLength float64) Segment {
	t.Angle = math.Atan2(pos.Y-t.Last.Y, pos.X-t.Last.X)
	t.Direction = FromAngle(t.Angle)
	t.Last = pos

	return Segment{
		P1: pos,
		P2: dmath.Vec2{
			X: pos.X + t.Direction.X*rayLength,
			Y: pos.Y + t.Direction.Y*rayLength,
		},
	}
}

// Reset forgets the previous position.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
