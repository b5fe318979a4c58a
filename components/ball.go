package components

import "github.com/yohamta/donburi"

// BallLayer is one decoration sprite stacked on top of a ball.
type BallLayer struct {
	Sprite   string
	Scale    float64
	Rotation float64
	SpinDir  float64 // +1 or -1
}

type BallData struct {
	Layers []BallLayer
	Spin   float64 // radians per second
	Dead   bool    // set when cut or off-screen, before the entry is removed
}

var Ball = donburi.NewComponentType[BallData]()
