package systems

import (
	"log"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTitle handles keyboard and gamepad shortcuts on the title screen.
// Mouse and touch go through the title UI buttons, which call the same helpers.
func UpdateTitle(ecs *ecs.ECS) {
	menu := GetOrCreateMenu(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionNextVariant).JustPressed {
		CycleVariant(ecs, menu)
	}
	if GetAction(input, cfg.ActionInspect).JustPressed {
		ToggleInspect(menu)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		RequestStart(ecs, menu)
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		menu.ExitRequested = true
	}
}

// CycleVariant applies the next variant in build order.
func CycleVariant(ecs *ecs.ECS, menu *components.MenuData) {
	next := cfg.NextVariant(menu.Variant)
	if err := cfg.ApplyVariant(next); err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	menu.Variant = next
	PlaySFX(ecs, cfg.SoundMenuSelect)
}

// ToggleInspect flips inspect mode for the next run.
func ToggleInspect(menu *components.MenuData) {
	menu.Inspect = !menu.Inspect
	cfg.Debug.Inspect = menu.Inspect
}

// RequestStart asks the title scene to start the arcade.
func RequestStart(ecs *ecs.ECS, menu *components.MenuData) {
	menu.StartRequested = true
	PlaySFX(ecs, cfg.SoundMenuSelect)
}

// GetOrCreateMenu returns the singleton Menu component, seeded from the
// current configuration.
func GetOrCreateMenu(ecs *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			Variant: cfg.Current,
			Inspect: cfg.Debug.Inspect,
		})
	}
	return components.Menu.Get(entry)
}
