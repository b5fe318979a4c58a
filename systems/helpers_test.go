package systems

import (
	"testing"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/systems/factory"
	"github.com/automoto/cutball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns a world with a space covering the screen. Config
// globals changed by the test are restored on cleanup.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	restoreConfig(t)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Physics.SpaceCellWidth, cfg.Physics.SpaceCellHeight)
	return e
}

func restoreConfig(t *testing.T) {
	t.Helper()
	screen := *cfg.C
	ball, swipe, spawner := cfg.Ball, cfg.Swipe, cfg.Spawner
	marker, cutHalf, physics := cfg.Marker, cfg.CutHalf, cfg.Physics
	pointer, stage, debug := cfg.Pointer, cfg.Stage, cfg.Debug
	hitEnabled, missEnabled, current := cfg.Sound.HitEnabled, cfg.Sound.MissEnabled, cfg.Current

	t.Cleanup(func() {
		*cfg.C = screen
		cfg.Ball, cfg.Swipe, cfg.Spawner = ball, swipe, spawner
		cfg.Marker, cfg.CutHalf, cfg.Physics = marker, cutHalf, physics
		cfg.Pointer, cfg.Stage, cfg.Debug = pointer, stage, debug
		cfg.Sound.HitEnabled, cfg.Sound.MissEnabled, cfg.Current = hitEnabled, missEnabled, current
	})
}

type eachable interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func count(e *ecs.ECS, c eachable) int {
	n := 0
	c.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

func countBalls(e *ecs.ECS) int {
	return count(e, tags.Ball)
}

func pendingSounds(e *ecs.ECS, id cfg.SoundID) []components.SoundRequest {
	var out []components.SoundRequest
	for _, req := range GetOrCreateAudio(e).PendingSFX {
		if req.ID == id {
			out = append(out, req)
		}
	}
	return out
}

func tick(e *ecs.ECS, n int, systems ...ecs.System) {
	for range n {
		for _, s := range systems {
			s(e)
		}
	}
}
