package systems

import (
	"testing"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
)

func TestSpawnerOneBallPerInterval(t *testing.T) {
	e := newTestECS(t)
	cfg.C.TPS = 60
	cfg.Spawner.Interval = 0.75

	tick(e, 44, UpdateSpawner)
	if n := countBalls(e); n != 0 {
		t.Fatalf("expected no ball before the first interval, got %d", n)
	}

	tick(e, 1, UpdateSpawner)
	if n := countBalls(e); n != 1 {
		t.Fatalf("expected 1 ball after 45 ticks, got %d", n)
	}

	tick(e, 45*9, UpdateSpawner)
	if n := countBalls(e); n != 10 {
		t.Errorf("expected 10 balls after 450 ticks, got %d", n)
	}
	if s := GetOrCreateStats(e).Spawned; s != 10 {
		t.Errorf("expected spawned counter 10, got %d", s)
	}
}

func TestSpawnerCatchesUpLongFrames(t *testing.T) {
	e := newTestECS(t)
	cfg.C.TPS = 1 // one tick covers a full second
	cfg.Spawner.Interval = 0.25

	UpdateSpawner(e)

	if n := countBalls(e); n != 4 {
		t.Errorf("expected 4 balls from one long tick, got %d", n)
	}
}

func TestSpawnPositionRange(t *testing.T) {
	restoreConfig(t)
	cfg.C.Width, cfg.C.Height = 176, 256
	cfg.Ball.Width = 32
	cfg.Spawner.YJitter = 32

	rng := NewRand(7)
	for range 2000 {
		x, y := SpawnPosition(rng, nil)
		if x < 32 || x > 144 {
			t.Fatalf("x %v outside [32, 144]", x)
		}
		if y < 96 || y > 160 {
			t.Fatalf("y %v outside mid-screen jitter", y)
		}
	}
}

func TestSpawnPositionUsesZone(t *testing.T) {
	restoreConfig(t)
	rng := NewRand(3)
	zone := &spawnZone{top: 10, bottom: 20}
	for range 500 {
		_, y := SpawnPosition(rng, zone)
		if y < 10 || y > 20 {
			t.Fatalf("y %v outside zone", y)
		}
	}
}

func TestSpawnedBallJumps(t *testing.T) {
	e := newTestECS(t)
	cfg.Ball.Static = false
	cfg.Ball.JumpForce = 330

	ball := SpawnBall(e)

	if v := components.Body.Get(ball).VelY; v != -330 {
		t.Errorf("expected upward velocity -330, got %v", v)
	}
}

func TestStaticBallDoesNotJump(t *testing.T) {
	e := newTestECS(t)
	cfg.Ball.Static = true

	ball := SpawnBall(e)
	tick(e, 10, UpdatePhysics)

	body := components.Body.Get(ball)
	if body.VelY != 0 {
		t.Errorf("expected static ball at rest, got velocity %v", body.VelY)
	}
}

func TestNewRandSeedIsDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		if a.Float64() != b.Float64() {
			t.Fatal("expected equal sequences for equal seeds")
		}
	}
}

func TestOffscreenRemovedOnce(t *testing.T) {
	e := newTestECS(t)
	cfg.Physics.Offscreen = cfg.OffscreenBottom
	cfg.Sound.MissEnabled = true

	ball := SpawnBall(e)
	components.Object.Get(ball).Y = float64(cfg.C.Height) + 1

	UpdateOffscreen(e)
	UpdateOffscreen(e)

	if ball.Valid() {
		t.Error("expected off-screen ball removed")
	}
	if m := GetOrCreateStats(e).Misses; m != 1 {
		t.Errorf("expected 1 miss, got %d", m)
	}
	if n := len(pendingSounds(e, cfg.SoundMiss)); n != 1 {
		t.Errorf("expected 1 miss sound, got %d", n)
	}
}

func TestOffscreenMissSoundDisabled(t *testing.T) {
	e := newTestECS(t)
	cfg.Sound.MissEnabled = false

	ball := SpawnBall(e)
	components.Object.Get(ball).Y = float64(cfg.C.Height) + 1
	UpdateOffscreen(e)

	if n := len(pendingSounds(e, cfg.SoundMiss)); n != 0 {
		t.Errorf("expected no miss sound, got %d", n)
	}
}

func TestIsOffscreen(t *testing.T) {
	e := newTestECS(t)
	cfg.C.Width, cfg.C.Height = 176, 256
	ball := SpawnBall(e)
	obj := components.Object.Get(ball)

	tests := []struct {
		name   string
		x, y   float64
		policy cfg.OffscreenPolicy
		want   bool
	}{
		{"visible bottom", 72, 100, cfg.OffscreenBottom, false},
		{"below bottom", 72, 257, cfg.OffscreenBottom, true},
		{"touching bottom edge", 72, 256, cfg.OffscreenBottom, false},
		{"above top bottom policy", 72, -100, cfg.OffscreenBottom, false},
		{"above top any policy", 72, -33, cfg.OffscreenAny, true},
		{"left any policy", -33, 100, cfg.OffscreenAny, true},
		{"left bottom policy", -33, 100, cfg.OffscreenBottom, false},
		{"right any policy", 177, 100, cfg.OffscreenAny, true},
		{"partly visible any", -16, 100, cfg.OffscreenAny, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj.X, obj.Y = tt.x, tt.y
			if got := IsOffscreen(obj, tt.policy); got != tt.want {
				t.Errorf("IsOffscreen(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSpawnedBallsStayOnscreenUnderAnyPolicy(t *testing.T) {
	e := newTestECS(t)
	cfg.Physics.Offscreen = cfg.OffscreenAny

	ball := SpawnBall(e)
	for range 30 {
		UpdatePhysics(e)
		UpdateObjects(e)
		UpdateOffscreen(e)
		if !ball.Valid() {
			t.Fatal("ball left the screen while still rising")
		}
	}
}
