package components

import (
	"image/color"

	"github.com/automoto/playmates/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData plays a horizontal sprite strip.
type AnimationData struct {
	Current     *animations.Animation
	Frames      []*ebiten.Image // pre-sliced strip frames
	FrameWidth  int
	FrameHeight int
	Tint        color.RGBA
}

// Image returns the frame to draw this tick, or nil when nothing is loaded.
func (a *AnimationData) Image() *ebiten.Image {
	if a.Current == nil || len(a.Frames) == 0 {
		return nil
	}
	frame := a.Current.Frame()
	if frame < 0 || frame >= len(a.Frames) {
		frame = 0
	}
	return a.Frames[frame]
}

var Animation = donburi.NewComponentType[AnimationData]()
