package systems

import (
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var touchIDs []ebiten.TouchID

// UpdatePointer turns touch and mouse movement into pointer move events.
// Each touch that moved this tick yields one event; the mouse yields one event
// when it moved and, if configured, the left button is held.
func UpdatePointer(ecs *ecs.ECS) {
	pointer := GetOrCreatePointer(ecs)

	if cfg.Pointer.Touch {
		pollTouches(ecs, pointer)
	}
	if cfg.Pointer.Mouse {
		pollMouse(ecs, pointer)
	}
}

func pollTouches(ecs *ecs.ECS, pointer *components.PointerData) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	active := make(map[ebiten.TouchID]struct{}, len(touchIDs))
	for _, id := range touchIDs {
		active[id] = struct{}{}
		x, y := ebiten.TouchPosition(id)
		pos := dmath.Vec2{X: float64(x), Y: float64(y)}

		prev, known := pointer.Touches[id]
		pointer.Touches[id] = pos
		if known && prev != pos {
			QueuePointerMove(ecs, pos)
			getOrCreateInput(ecs).LastInputMethod = components.InputTouch
		}
	}

	for id := range pointer.Touches {
		if _, ok := active[id]; !ok {
			delete(pointer.Touches, id)
		}
	}
}

func pollMouse(ecs *ecs.ECS, pointer *components.PointerData) {
	x, y := ebiten.CursorPosition()
	pos := dmath.Vec2{X: float64(x), Y: float64(y)}

	moved := pointer.MouseKnown && pointer.Mouse != pos
	pointer.Mouse = pos
	pointer.MouseKnown = true

	if !moved {
		return
	}
	if cfg.Pointer.MouseRequiresButton && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	QueuePointerMove(ecs, pos)
}

// QueuePointerMove records a pointer move to be resolved by UpdateSwipe.
func QueuePointerMove(ecs *ecs.ECS, pos dmath.Vec2) {
	pointer := GetOrCreatePointer(ecs)
	pointer.Events = append(pointer.Events, pos)
}

// GetOrCreatePointer returns the singleton Pointer component, creating it if needed
func GetOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
		components.Pointer.SetValue(entry, components.PointerData{
			Events:  make([]dmath.Vec2, 0, 8),
			Touches: make(map[ebiten.TouchID]dmath.Vec2),
		})
	}
	return components.Pointer.Get(entry)
}
