package gamemath

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: dmath.Vec2{X: x1, Y: y1}, P2: dmath.Vec2{X: x2, Y: y2}}
}

func TestSegmentIntersectsRect(t *testing.T) {
	tests := []struct {
		name string
		s    Segment
		want bool
	}{
		{"crosses through", seg(-10, 5, 30, 5), true},
		{"fully inside", seg(2, 2, 4, 4), true},
		{"touches left edge", seg(-5, 5, 0, 5), true},
		{"touches corner", seg(-5, -5, 0, 0), true},
		{"runs along top edge", seg(-5, 0, 5, 0), true},
		{"misses above", seg(-5, -1, 30, -1), false},
		{"stops short", seg(-10, 5, -0.5, 5), false},
		{"diagonal miss", seg(12, -5, 25, 5), false},
		{"vertical through", seg(5, -10, 5, 30), true},
		{"degenerate point inside", seg(3, 3, 3, 3), true},
		{"degenerate point outside", seg(30, 3, 30, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersectsRect(tt.s, 0, 0, 10, 10); got != tt.want {
				t.Errorf("SegmentIntersectsRect(%+v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestSegmentIntersectsCircle(t *testing.T) {
	center := dmath.Vec2{X: 50, Y: 50}
	tests := []struct {
		name string
		s    Segment
		want bool
	}{
		{"through center", seg(30, 50, 70, 50), true},
		{"tangent", seg(30, 40, 70, 40), true},
		{"passes outside", seg(30, 39, 70, 39), false},
		{"ends before circle", seg(0, 50, 39, 50), false},
		{"starts inside", seg(50, 50, 200, 200), true},
		{"corner of bounding box only", seg(58, 58, 70, 70), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersectsCircle(tt.s, center, 10); got != tt.want {
				t.Errorf("SegmentIntersectsCircle(%+v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestRightwardSwipeHitsBallAtEight(t *testing.T) {
	var tr Tracker
	tr.Move(dmath.Vec2{X: 0, Y: 0}, 16)
	s := tr.Move(dmath.Vec2{X: 16, Y: 0}, 16)

	if s.P2.X <= s.P1.X {
		t.Fatalf("segment should point along +X, got %+v", s)
	}
	// a ball centered at (8,0) with half-width 8 reaches x=16, where the ray starts
	if !SegmentIntersectsRect(s, 8-8, 0-8, 16, 16) {
		t.Error("rightward swipe should hit a 16 wide ball centered at (8,0)")
	}
	if !SegmentIntersectsCircle(s, dmath.Vec2{X: 8, Y: 0}, 8) {
		t.Error("rightward swipe should hit a radius 8 ball at (8,0)")
	}
}

func TestRectsOverlap(t *testing.T) {
	if !RectsOverlap(0, 0, 10, 10, 10, 10, 5, 5) {
		t.Error("touching corners should overlap")
	}
	if RectsOverlap(0, 0, 10, 10, 10.5, 0, 5, 5) {
		t.Error("separated rects should not overlap")
	}
}
