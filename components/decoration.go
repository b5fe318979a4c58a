package components

import "github.com/yohamta/donburi"

// DecorationData is a static sprite such as the avatar.
type DecorationData struct {
	Sprite string
	Z      int
}

var Decoration = donburi.NewComponentType[DecorationData]()
