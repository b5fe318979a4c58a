package systems

import (
	"math"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/gamemath"
	"github.com/automoto/cutball/systems/factory"
	"github.com/automoto/cutball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// BroadPhase narrows the balls worth testing against an attack segment.
// Implementations may return extra balls but must not miss any the segment
// touches.
type BroadPhase interface {
	Candidates(ecs *ecs.ECS, seg gamemath.Segment) []*donburi.Entry
}

// LinearBroadPhase returns every ball.
type LinearBroadPhase struct{}

func (LinearBroadPhase) Candidates(ecs *ecs.ECS, _ gamemath.Segment) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// GridBroadPhase asks the resolv space for balls sharing a cell with the
// segment's bounding box.
type GridBroadPhase struct{}

func (GridBroadPhase) Candidates(ecs *ecs.ECS, seg gamemath.Segment) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return LinearBroadPhase{}.Candidates(ecs, seg)
	}
	space := components.Space.Get(spaceEntry)

	// Grow the query box past the ball boxes by however far a hitbox can reach
	// outside them, plus a pixel for rays touching only an edge.
	m := queryMargin()
	x, y, w, h := seg.Bounds()
	x, y, w, h = x-m, y-m, w+2*m, h+2*m

	spaceW := float64(space.Width() * space.CellWidth)
	spaceH := float64(space.Height() * space.CellHeight)
	if x < 0 || y < 0 || x+w > spaceW || y+h > spaceH {
		// balls partly off-screen are only registered in on-screen cells
		return LinearBroadPhase{}.Candidates(ecs, seg)
	}

	query := resolv.NewObject(x, y, w, h, tags.ResolvQuery)
	space.Add(query)
	defer space.Remove(query)

	check := query.Check(0, 0, tags.ResolvBall)
	if check == nil {
		return nil
	}

	seen := make(map[*donburi.Entry]struct{}, len(check.Objects))
	out := make([]*donburi.Entry, 0, len(check.Objects))
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// queryMargin is how far the grid query box extends around a segment. Ball
// objects are Width×Height boxes, but a circle hitbox reaches
// Radius+CollisionPadding from the center, which can lie outside the box.
// Rect hitboxes match the box, so the circle reach bounds both kinds.
func queryMargin() float64 {
	reach := cfg.Ball.Radius + cfg.Ball.CollisionPadding
	overhang := math.Max(0, reach-math.Min(cfg.Ball.Width, cfg.Ball.Height)/2)
	return 1 + overhang
}

// SelectBroadPhase returns the broad phase for the configured kind.
func SelectBroadPhase(kind cfg.BroadPhaseKind) BroadPhase {
	if kind == cfg.BroadPhaseLinear {
		return LinearBroadPhase{}
	}
	return GridBroadPhase{}
}

// UpdateSwipe resolves every pointer move queued this tick, in order.
func UpdateSwipe(ecs *ecs.ECS) {
	pointer := GetOrCreatePointer(ecs)
	for _, pos := range pointer.Events {
		HandlePointerMove(ecs, pos)
	}
	pointer.Events = pointer.Events[:0]
}

// HandlePointerMove turns one pointer move into an attack segment, cuts every
// ball it touches and leaves a hit marker at pos. It returns the number of
// balls cut.
func HandlePointerMove(ecs *ecs.ECS, pos dmath.Vec2) int {
	pointer := GetOrCreatePointer(ecs)
	seg := pointer.Tracker.Move(pos, cfg.Swipe.RayLength)
	pointer.LastSegment = seg
	pointer.HasSegment = true

	stats := GetOrCreateStats(ecs)
	stats.Swipes++

	hits := 0
	for _, e := range SelectBroadPhase(cfg.Swipe.BroadPhase).Candidates(ecs, seg) {
		if !e.Valid() || !e.HasComponent(components.Ball) {
			continue
		}
		if components.Ball.Get(e).Dead {
			continue
		}
		if !SegmentHitsBall(seg, components.Object.Get(e), components.Hitbox.Get(e)) {
			continue
		}
		cutBall(ecs, e, pos)
		hits++
	}

	factory.CreateMarker(ecs, pos.X, pos.Y)
	return hits
}

// SegmentHitsBall runs the narrow-phase test for one ball.
func SegmentHitsBall(seg gamemath.Segment, obj *components.ObjectData, hb *components.HitboxData) bool {
	cx, cy := obj.Center()
	if hb.Kind == cfg.HitboxRect {
		return gamemath.SegmentIntersectsRect(seg, cx-hb.Width/2, cy-hb.Height/2, hb.Width, hb.Height)
	}
	return gamemath.SegmentIntersectsCircle(seg, dmath.Vec2{X: cx, Y: cy}, hb.Radius+hb.Padding)
}

func cutBall(ecs *ecs.ECS, ball *donburi.Entry, pos dmath.Vec2) {
	if cfg.Swipe.CutHalves {
		factory.CreateCutHalves(ecs, ball)
	}
	factory.SpawnKaboom(ecs, pos.X, pos.Y)

	if cfg.Sound.HitEnabled {
		rng := GetOrCreateSpawner(ecs).Rand
		detune := (rng.Float64()*2 - 1) * cfg.Swipe.DetuneCents
		PlaySFXDetuned(ecs, cfg.SoundHit, detune)
	}

	GetOrCreateStats(ecs).Hits++
	DestroyBall(ecs, ball)
}

// DestroyBall removes a ball from the space and the world. Calling it again
// on the same entry is a no-op.
func DestroyBall(ecs *ecs.ECS, ball *donburi.Entry) {
	if ball == nil || !ball.Valid() {
		return
	}
	components.Ball.Get(ball).Dead = true
	removeEntry(ball)
}
