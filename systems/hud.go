package systems

import (
	"fmt"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/fonts"
	"github.com/automoto/cutball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CountLiveBalls returns the number of balls still in play.
func CountLiveBalls(ecs *ecs.ECS) int {
	n := 0
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Ball.Get(e).Dead {
			n++
		}
	})
	return n
}

// HUDLines returns the inspect counters, one per line.
func HUDLines(ecs *ecs.ECS) []string {
	stats := GetOrCreateStats(ecs)
	return []string{
		cfg.VariantPresets[cfg.Current].Label,
		fmt.Sprintf("live %d", CountLiveBalls(ecs)),
		fmt.Sprintf("hits %d  miss %d", stats.Hits, stats.Misses),
	}
}

// DrawHUD shows the inspect counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Inspect {
		return
	}

	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := cfg.UI.HUDMargin
	y := cfg.UI.HUDMargin + lineHeight
	for _, line := range HUDLines(ecs) {
		text.Draw(screen, line, face, x, y, cfg.UI.HUDTextColor)
		y += lineHeight
	}
}
