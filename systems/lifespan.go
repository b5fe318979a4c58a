package systems

import (
	"math"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLifespans shrinks markers and removes anything whose lifespan ran out.
func UpdateLifespans(ecs *ecs.ECS) {
	dt := cfg.DT()

	components.Shrink.Each(ecs.World, func(e *donburi.Entry) {
		shrink := components.Shrink.Get(e)
		shrink.Scale *= math.Max(0, 1-dt*shrink.Rate)
	})

	var expired []*donburi.Entry
	components.Lifespan.Each(ecs.World, func(e *donburi.Entry) {
		life := components.Lifespan.Get(e)
		life.Remaining -= dt
		if life.Expired() {
			if e.HasComponent(components.Shrink) {
				components.Shrink.Get(e).Scale = 0
			}
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		e.Remove()
	}
}
