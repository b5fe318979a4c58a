package systems

import (
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInspect toggles inspect mode.
func UpdateInspect(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionInspect).JustPressed {
		cfg.Debug.Inspect = !cfg.Debug.Inspect
	}
}

// DrawInspect draws the last attack ray, ball hitboxes and the broad-phase
// objects registered in the space.
func DrawInspect(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Inspect {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		c := cfg.UI.ObjectColor
		for _, obj := range space.Objects() {
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		hb := components.Hitbox.Get(e)
		cx, cy := o.Center()
		if hb.Kind == cfg.HitboxRect {
			vector.StrokeRect(screen, float32(cx-hb.Width/2), float32(cy-hb.Height/2),
				float32(hb.Width), float32(hb.Height), 1, cfg.UI.HitboxColor, false)
			return
		}
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(hb.Radius+hb.Padding), 1, cfg.UI.HitboxColor, true)
	})

	pointer := GetOrCreatePointer(ecs)
	if pointer.HasSegment {
		seg := pointer.LastSegment
		vector.StrokeLine(screen,
			float32(seg.P1.X), float32(seg.P1.Y),
			float32(seg.P2.X), float32(seg.P2.Y),
			cfg.UI.RayWidth, cfg.UI.RayColor, true)
	}
}
