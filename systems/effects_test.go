package systems

import (
	"math"
	"testing"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/systems/factory"
	"github.com/automoto/cutball/tags"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestMarkerShrinksMonotonically(t *testing.T) {
	e := newTestECS(t)
	cfg.C.TPS = 60
	cfg.Marker.Lifespan = 0.5
	cfg.Marker.ShrinkRate = 4

	marker := factory.CreateMarker(e, 50, 50)
	prev := components.Shrink.Get(marker).Scale

	ticks := 0
	for marker.Valid() {
		UpdateLifespans(e)
		ticks++
		if !marker.Valid() {
			break
		}
		scale := components.Shrink.Get(marker).Scale
		if scale > prev {
			t.Fatalf("tick %d: scale grew from %v to %v", ticks, prev, scale)
		}
		prev = scale
		if ticks > 100 {
			t.Fatal("marker never expired")
		}
	}

	if ticks > 30 {
		t.Errorf("expected marker gone within 30 ticks, took %d", ticks)
	}
}

func TestMarkerScaleNeverNegative(t *testing.T) {
	e := newTestECS(t)
	cfg.Marker.ShrinkRate = 1000
	cfg.Marker.Lifespan = 1

	marker := factory.CreateMarker(e, 50, 50)
	UpdateLifespans(e)

	if s := components.Shrink.Get(marker).Scale; s != 0 {
		t.Errorf("expected scale clamped to 0, got %v", s)
	}
}

func TestMarkersFromSwipeExpire(t *testing.T) {
	e := newTestECS(t)
	for i := range 5 {
		QueuePointerMove(e, dmath.Vec2{X: float64(10 * i), Y: 10})
	}
	UpdateSwipe(e)

	tick(e, 30, UpdateLifespans)

	if n := count(e, tags.Marker); n != 0 {
		t.Errorf("expected all markers expired, got %d", n)
	}
}

func TestCutHalvesFadeOut(t *testing.T) {
	e := newTestECS(t)
	cfg.CutHalf.Duration = 0.5

	ball := factory.CreateBall(e, 88, 128)
	top, bottom := factory.CreateCutHalves(e, ball)

	tick(e, 10, UpdatePhysics, UpdateEffects)
	if !top.Valid() || !bottom.Valid() {
		t.Fatal("halves removed before the fade finished")
	}
	if a := components.CutHalf.Get(top).Alpha; a <= 0 || a >= 1 {
		t.Errorf("expected partial alpha mid-fade, got %v", a)
	}

	tick(e, 40, UpdatePhysics, UpdateEffects)
	if top.Valid() || bottom.Valid() {
		t.Error("expected halves removed after the fade")
	}
}

func TestCutHalvesSplitAtCutPercent(t *testing.T) {
	e := newTestECS(t)
	cfg.Swipe.CutPercent = 0.35

	ball := factory.CreateBall(e, 88, 128)
	top, bottom := factory.CreateCutHalves(e, ball)

	topObj := components.Object.Get(top)
	bottomObj := components.Object.Get(bottom)
	wantTop := cfg.Ball.Height * 0.35
	if math.Abs(topObj.H-wantTop) > 1e-9 {
		t.Errorf("expected top height %v, got %v", wantTop, topObj.H)
	}
	if math.Abs(topObj.H+bottomObj.H-cfg.Ball.Height) > 1e-9 {
		t.Errorf("halves should add up to the ball height, got %v + %v", topObj.H, bottomObj.H)
	}
	if math.Abs(bottomObj.Y-(topObj.Y+topObj.H)) > 1e-9 {
		t.Error("bottom half should start where the top half ends")
	}
	if components.Body.Get(top).VelX >= components.Body.Get(bottom).VelX {
		t.Error("halves should drift apart")
	}
}

func TestBurstRemovedAfterAnimation(t *testing.T) {
	e := newTestECS(t)
	burst := factory.SpawnKaboom(e, 40, 40)
	if burst == nil {
		t.Fatal("expected burst entity")
	}

	tick(e, 100, UpdateEffects)

	if burst.Valid() {
		t.Error("expected burst removed after its animation looped")
	}
}

func TestBallLayersSpin(t *testing.T) {
	e := newTestECS(t)
	cfg.Ball.Decorated = true
	cfg.Ball.SpinSpeed = 1.5

	ball := factory.CreateBall(e, 88, 128)
	tick(e, 60, UpdateEffects)

	layers := components.Ball.Get(ball).Layers
	if len(layers) == 0 {
		t.Fatal("expected decoration layers")
	}
	if r := layers[0].Rotation; math.Abs(r-1.5) > 1e-6 {
		t.Errorf("expected 1.5 rad after one second, got %v", r)
	}
}

func TestPhysicsIntegration(t *testing.T) {
	e := newTestECS(t)
	cfg.C.TPS = 60
	cfg.Physics.Gravity = 600
	cfg.Physics.MaxFallSpeed = 900
	cfg.Ball.Static = false

	ball := factory.CreateBall(e, 88, 128)
	obj := components.Object.Get(ball)
	startY := obj.Y

	UpdatePhysics(e)

	body := components.Body.Get(ball)
	if math.Abs(body.VelY-10) > 1e-9 {
		t.Errorf("expected velocity 10 after one tick, got %v", body.VelY)
	}
	if math.Abs(obj.Y-(startY+10.0/60)) > 1e-9 {
		t.Errorf("expected y %v, got %v", startY+10.0/60, obj.Y)
	}

	tick(e, 600, UpdatePhysics)
	if body.VelY > 900 {
		t.Errorf("expected fall speed capped at 900, got %v", body.VelY)
	}
}

func TestObjectsFollowBodiesInSpace(t *testing.T) {
	e := newTestECS(t)
	cfg.Swipe.BroadPhase = cfg.BroadPhaseGrid
	cfg.Ball.Hitbox = cfg.HitboxRect

	ball := factory.CreateBall(e, 40, 40)
	obj := components.Object.Get(ball)
	obj.X, obj.Y = 120, 180
	UpdateObjects(e)

	GetOrCreatePointer(e).Tracker.Last = dmath.Vec2{X: 120, Y: 196}
	if hits := HandlePointerMove(e, dmath.Vec2{X: 130, Y: 196}); hits != 1 {
		t.Errorf("expected moved ball found by the grid, got %d hits", hits)
	}
}
