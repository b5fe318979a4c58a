package tags

import "github.com/yohamta/donburi"

var (
	Ball       = donburi.NewTag().SetName("Ball")
	Marker     = donburi.NewTag().SetName("Marker")
	CutHalf    = donburi.NewTag().SetName("CutHalf")
	Decoration = donburi.NewTag().SetName("Decoration")
)

// Resolv tags for broad-phase queries
const (
	ResolvBall  = "ball"
	ResolvQuery = "query"
)
