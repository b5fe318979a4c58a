package components

import "github.com/yohamta/donburi"

// BodyData is a point-mass body integrated once per tick.
type BodyData struct {
	VelX        float64 // px/s
	VelY        float64 // px/s
	GravityMult float64 // fraction of world gravity applied
	MaxFall     float64 // 0 = no cap
	Static      bool
}

var Body = donburi.NewComponentType[BodyData]()
