package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CutHalfData is one piece of a sliced ball. From and To are the fractions of
// the ball sprite's height this piece shows.
type CutHalfData struct {
	Sprite   string
	Top      bool
	From     float64
	To       float64
	Rotation float64
	Spin     float64
	Alpha    float32
	Fade     *gween.Tween
}

var CutHalf = donburi.NewComponentType[CutHalfData]()
