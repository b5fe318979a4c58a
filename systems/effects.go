package systems

import (
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances purely visual state: sprite spin, burst animations,
// auto-destroy timers and cut halves.
func UpdateEffects(ecs *ecs.ECS) {
	updateSpin(ecs)
	updateVFXAnimations(ecs)
	updateAutoDestroy(ecs)
	updateCutHalves(ecs)
}

// updateSpin rotates ball decoration layers
func updateSpin(ecs *ecs.ECS) {
	dt := cfg.DT()
	components.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		for i := range ball.Layers {
			ball.Layers[i].Rotation += ball.Spin * ball.Layers[i].SpinDir * dt
		}
	})
}

// updateVFXAnimations advances animations for VFX entities (they don't have their own update system)
func updateVFXAnimations(ecs *ecs.ECS) {
	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// updateAutoDestroy handles entities that should be destroyed after duration or animation
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)

		if ad.DestroyOnAnimLoop && e.HasComponent(components.Animation) {
			anim := components.Animation.Get(e)
			if anim.CurrentAnimation != nil && anim.CurrentAnimation.Looped {
				toDestroy = append(toDestroy, e)
				return
			}
		}

		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		removeEntry(e)
	}
}

// updateCutHalves fades and spins the pieces of cut balls, removing them once
// the fade completes.
func updateCutHalves(ecs *ecs.ECS) {
	dt := cfg.DT()
	var done []*donburi.Entry

	components.CutHalf.Each(ecs.World, func(e *donburi.Entry) {
		half := components.CutHalf.Get(e)
		half.Rotation += half.Spin * dt

		alpha, finished := half.Fade.Update(float32(dt))
		half.Alpha = alpha
		if finished {
			done = append(done, e)
		}
	})

	for _, e := range done {
		removeEntry(e)
	}
}

// removeEntry drops an entity, unregistering its object from the space first.
func removeEntry(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
