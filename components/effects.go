package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ConfettiData is one celebration particle
type ConfettiData struct {
	X, Y     float64
	VX, VY   float64
	Angle    float64
	Spin     float64
	Size     float64
	Color    color.RGBA
	Lifetime int // total frames, for fading
	Fade     *gween.Tween
	Alpha    float32
}

var Confetti = donburi.NewComponentType[ConfettiData]()

// PopupData drives the "Gotcha!" pop-in.
type PopupData struct {
	Tween *gween.Tween
	Scale float32
}

var Popup = donburi.NewComponentType[PopupData]()
