package components

import (
	"github.com/automoto/cutball/assets/animations"
	"github.com/automoto/cutball/config"
	"github.com/yohamta/donburi"
)

// AnimationData drives a sprite-sheet animation. Frames are looked up from
// the shared frame cache at draw time, keyed by Dir and CurrentSheet.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Dir              string
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
			a.CurrentAnimation.Looped = false
		}
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
