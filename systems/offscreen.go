package systems

import (
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOffscreen removes balls that left the screen under the configured
// policy. Each ball is removed once; the miss sound plays when enabled.
func UpdateOffscreen(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		if components.Ball.Get(e).Dead {
			return
		}
		if IsOffscreen(components.Object.Get(e), cfg.Physics.Offscreen) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		DestroyBall(ecs, e)
		GetOrCreateStats(ecs).Misses++
		if cfg.Sound.MissEnabled {
			PlaySFX(ecs, cfg.SoundMiss)
		}
	}
}

// IsOffscreen reports whether obj is out of view under policy.
func IsOffscreen(obj *components.ObjectData, policy cfg.OffscreenPolicy) bool {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	if policy == cfg.OffscreenBottom {
		return obj.Y > h
	}
	return obj.X+obj.W < 0 || obj.X > w || obj.Y+obj.H < 0 || obj.Y > h
}
