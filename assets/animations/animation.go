package animations

import "github.com/automoto/playmates/config"

// Animation steps through a frame range of a sprite strip. With PingPong set
// it runs First..Last..First instead of wrapping, which suits wing beats.
type Animation struct {
	First      int
	Last       int
	Step       int     // how many indices do we move per frame
	SpeedInTps float32 // how many ticks before next frame
	PingPong   bool
	Looped     bool

	frameCounter float32
	frame        int
	dir          int
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps

	next := a.frame + a.Step*a.dir
	switch {
	case next > a.Last && a.PingPong && a.Last > a.First:
		a.dir = -1
		next = a.Last - a.Step
	case next > a.Last:
		a.Looped = true
		next = a.First
	case next < a.First:
		a.Looped = true
		a.dir = 1
		next = a.First + a.Step
	}
	a.frame = next
}

func (a *Animation) Frame() int {
	return a.frame
}

// Seek jumps to a frame so that sprites sharing an animation don't beat in sync.
func (a *Animation) Seek(frame int) {
	if frame < a.First || frame > a.Last {
		frame = a.First
	}
	a.frame = frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.dir = 1
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		dir:          1,
	}
}

// FromDef builds an animation from a config definition.
func FromDef(def config.AnimationDef) *Animation {
	a := NewAnimation(def.First, def.Last, def.Step, def.Speed)
	a.PingPong = def.PingPong
	return a
}
