package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-9

// SegmentIntersectsRect reports whether s touches the rectangle with top-left
// corner (x, y) and size w×h. Edges count as inside.
func SegmentIntersectsRect(s Segment, x, y, w, h float64) bool {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	tMin, tMax := 0.0, 1.0

	clip := func(p, q float64) bool {
		if math.Abs(p) < epsilon {
			// parallel to this slab: reject only when outside it
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > tMax {
				return false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return false
			}
			if t < tMax {
				tMax = t
			}
		}
		return true
	}

	return clip(-dx, s.P1.X-x) &&
		clip(dx, x+w-s.P1.X) &&
		clip(-dy, s.P1.Y-y) &&
		clip(dy, y+h-s.P1.Y) &&
		tMin <= tMax
}

// SegmentIntersectsCircle reports whether s comes within radius of center.
func SegmentIntersectsCircle(s Segment, center dmath.Vec2, radius float64) bool {
	return DistanceToSegment(s, center) <= radius
}

// DistanceToSegment returns the shortest distance from p to s.
func DistanceToSegment(s Segment, p dmath.Vec2) float64 {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	lenSq := dx*dx + dy*dy
	if lenSq < epsilon {
		return math.Hypot(p.X-s.P1.X, p.Y-s.P1.Y)
	}

	t := ((p.X-s.P1.X)*dx + (p.Y-s.P1.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	cx := s.P1.X + t*dx
	cy := s.P1.Y + t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}

// RectsOverlap reports whether two axis-aligned rectangles share any point.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax <= bx+bw && bx <= ax+aw && ay <= by+bh && by <= ay+ah
}
