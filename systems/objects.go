package systems

import (
	"github.com/automoto/cutball/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved objects in the space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
