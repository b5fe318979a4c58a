package animations

import "github.com/automoto/cutball/config"

// Animation steps through sheet indices First..Last, advancing one Step every
// SpeedInTps ticks.
type Animation struct {
	First            int
	Last             int
	Step             int
	SpeedInTps       float32
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // stay on the last frame instead of wrapping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}

	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Frames returns the number of distinct frames the animation shows.
func (a *Animation) Frames() int {
	return (a.Last-a.First)/a.Step + 1
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// FromDef builds an animation from its config definition.
func FromDef(def config.AnimationDef) *Animation {
	return NewAnimation(def.First, def.Last, def.Step, def.Speed)
}
