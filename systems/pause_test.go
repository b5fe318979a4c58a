package systems

import (
	"testing"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi/ecs"
)

func TestWithGameplayChecksSkipsWhilePaused(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	sys(e)
	GetOrCreatePause(e).IsPaused = true
	sys(e)
	sys(e)
	GetOrCreatePause(e).IsPaused = false
	sys(e)

	if calls != 2 {
		t.Errorf("expected 2 calls while unpaused, got %d", calls)
	}
}

func TestWithGameplayChecksSkipsAfterQuitToTitle(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	pause := GetOrCreatePause(e)
	pause.IsPaused = false
	pause.QuitToTitle = true
	sys(e)

	if calls != 0 {
		t.Errorf("expected gameplay frozen once leaving for the title, ran %d times", calls)
	}
}

func TestPausedWorldFreezesBalls(t *testing.T) {
	e := newTestECS(t)
	ball := SpawnBall(e)
	obj := components.Object.Get(ball)
	y := obj.Y

	GetOrCreatePause(e).IsPaused = true
	tick(e, 30, WithGameplayChecks(UpdatePhysics), WithGameplayChecks(UpdateSpawner))

	if obj.Y != y {
		t.Error("ball moved while paused")
	}
	if n := countBalls(e); n != 1 {
		t.Errorf("spawner ran while paused, %d balls", n)
	}
}

func TestPauseHint(t *testing.T) {
	tests := []struct {
		method components.InputMethod
		want   string
	}{
		{components.InputKeyboard, "Arrows: Move  Enter: Select"},
		{components.InputTouch, "Arrows: Move  Enter: Select"},
		{components.InputXbox, "D-Pad: Move  A: Select"},
		{components.InputPlayStation, "D-Pad: Move  Cross: Select"},
	}
	for _, tt := range tests {
		if got := getPauseHint(tt.method); got != tt.want {
			t.Errorf("getPauseHint(%v) = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestMenuCycleVariant(t *testing.T) {
	e := newTestECS(t)
	if err := cfg.ApplyVariant(cfg.VariantRect); err != nil {
		t.Fatal(err)
	}

	menu := GetOrCreateMenu(e)
	if menu.Variant != cfg.VariantRect {
		t.Fatalf("expected menu seeded with rect, got %v", menu.Variant)
	}

	CycleVariant(e, menu)
	if menu.Variant != cfg.VariantCircle || cfg.Current != cfg.VariantCircle {
		t.Errorf("expected circle variant, got menu %v config %v", menu.Variant, cfg.Current)
	}
	if cfg.Ball.Hitbox != cfg.HitboxCircle {
		t.Errorf("expected circle hitbox applied, got %v", cfg.Ball.Hitbox)
	}
	if n := len(pendingSounds(e, cfg.SoundMenuSelect)); n != 1 {
		t.Errorf("expected menu sound queued, got %d", n)
	}
}

func TestMenuToggleInspectAndStart(t *testing.T) {
	e := newTestECS(t)
	cfg.Debug.Inspect = false
	menu := GetOrCreateMenu(e)

	ToggleInspect(menu)
	if !menu.Inspect || !cfg.Debug.Inspect {
		t.Error("expected inspect on")
	}
	ToggleInspect(menu)
	if menu.Inspect || cfg.Debug.Inspect {
		t.Error("expected inspect off")
	}

	RequestStart(e, menu)
	if !menu.StartRequested {
		t.Error("expected start requested")
	}
}

func TestHUDLines(t *testing.T) {
	e := newTestECS(t)
	if err := cfg.ApplyVariant(cfg.VariantPolish); err != nil {
		t.Fatal(err)
	}

	SpawnBall(e)
	SpawnBall(e)
	stats := GetOrCreateStats(e)
	stats.Hits, stats.Misses = 3, 1

	lines := HUDLines(e)
	want := []string{"Polish", "live 2", "hits 3  miss 1"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPlaySFXQueues(t *testing.T) {
	e := newTestECS(t)

	PlaySFX(e, cfg.SoundHit)
	PlaySFXDetuned(e, cfg.SoundHit, -150)

	queue := GetOrCreateAudio(e).PendingSFX
	if len(queue) != 2 {
		t.Fatalf("expected 2 queued sounds, got %d", len(queue))
	}
	if queue[0].DetuneCents != 0 || queue[1].DetuneCents != -150 {
		t.Errorf("unexpected detune values %+v", queue)
	}
}
