package factory

import (
	"github.com/automoto/cutball/archetypes"
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMarker spawns a shrinking hit marker centered at (x, y). Markers are
// not registered in the space; nothing collides with them.
func CreateMarker(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)

	r := cfg.Marker.Radius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2)
	obj.Data = marker
	components.Object.Set(marker, &components.ObjectData{Object: obj})

	components.Lifespan.SetValue(marker, components.LifespanData{
		Remaining: cfg.Marker.Lifespan,
		Total:     cfg.Marker.Lifespan,
	})
	components.Shrink.SetValue(marker, components.ShrinkData{
		Scale: 1,
		Rate:  cfg.Marker.ShrinkRate,
	})

	return marker
}
