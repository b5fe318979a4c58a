package components

import "github.com/yohamta/donburi"

// SpriteData names an embedded sprite drawn centered on the entity's object.
type SpriteData struct {
	Name     string
	Rotation float64
	Spin     float64 // radians per second
	Alpha    float32
}

var Sprite = donburi.NewComponentType[SpriteData]()
