package systems

import (
	"math"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every dynamic body over one fixed tick.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.DT()

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Static {
			return
		}

		body.VelY += cfg.Physics.Gravity * body.GravityMult * dt
		if body.MaxFall > 0 {
			body.VelY = math.Min(body.VelY, body.MaxFall)
		}

		obj := components.Object.Get(e)
		obj.X += body.VelX * dt
		obj.Y += body.VelY * dt
	})
}
