package systems

import (
	"github.com/automoto/playmates/assets"
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/catchnet"
	"github.com/automoto/playmates/shared/flight"
	"github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawGarden paints the sky and a strip of grass along the bottom edge.
func DrawGarden(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	grass := h * 0.12
	vector.FillRect(screen, 0, h-grass, w, grass, cfg.UI.Grass, false)
}

// DrawCage renders the cage sprite in its corner.
func DrawCage(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Cage.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)

	img := assets.CageImage()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(obj.W/assets.CageArtSize, obj.H/assets.CageArtSize)
	drawOp.GeoM.Translate(obj.X, obj.Y)
	screen.DrawImage(img, drawOp)
}

// DrawButterflies renders every butterfly with its flip and flutter and
// records the rendered bounds the motion engine bounces against.
func DrawButterflies(ecs *ecs.ECS, screen *ebiten.Image) {
	size := factory.ButterflySize(Viewport())

	tags.Butterfly.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Butterfly.Get(e)
		if !b.Body.Alive() {
			return
		}
		b.Bounds = flight.Bounds{Size: size, Known: true}

		anim := components.Animation.Get(e)
		img := anim.Image()
		if img == nil {
			return
		}

		t := b.Transform
		fw, fh := float64(anim.FrameWidth), float64(anim.FrameHeight)

		// Scale around the sprite center so flips and flutter stay in place.
		var geo ebiten.GeoM
		geo.Translate(-fw/2, -fh/2)
		geo.Scale(size.W/fw*t.ScaleX, size.H/fh*t.ScaleY)
		geo.Translate(t.X+size.W/2, t.Y+size.H/2)

		if assets.TintShader != nil {
			shaderOp.GeoM = geo
			shaderOp.Images[0] = img
			shaderOp.Uniforms = assets.TintUniforms(anim.Tint)
			screen.DrawRectShader(anim.FrameWidth, anim.FrameHeight, assets.TintShader, shaderOp)
			return
		}

		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		drawOp.ColorScale.ScaleWithColor(anim.Tint)
		screen.DrawImage(img, drawOp)
	})
}

// DrawNet renders the net facing its orientation, with a ring when a
// catchable butterfly is close.
func DrawNet(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Net.First(ecs.World)
	if !ok {
		return
	}
	net := components.Net.Get(entry)
	r := net.Rect()
	c := r.Center()

	img := assets.NetImage()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-assets.NetArtSize/2, -assets.NetArtSize/2)
	sx := net.Size.W / assets.NetArtSize
	if net.Orientation == catchnet.Left {
		sx = -sx
	}
	drawOp.GeoM.Scale(sx, net.Size.H/assets.NetArtSize)
	drawOp.GeoM.Translate(c.X, c.Y)
	if net.Dragging {
		drawOp.ColorScale.Scale(1, 1, 1, 0.9)
	}
	screen.DrawImage(img, drawOp)

	if net.Near || net.Hover {
		radius := float32(net.Size.W) * 0.45
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), radius, 2, cfg.SoftWhite, true)
	}
}

// DrawConfetti renders the celebration particles as spinning strips.
func DrawConfetti(ecs *ecs.ECS, screen *ebiten.Image) {
	px := assets.WhitePixel()

	components.Confetti.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Confetti.Get(e)
		if c.Alpha <= 0 {
			return
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-0.5, -0.5)
		drawOp.GeoM.Scale(c.Size, c.Size*0.6)
		drawOp.GeoM.Rotate(c.Angle)
		drawOp.GeoM.Translate(c.X, c.Y)
		drawOp.ColorScale.ScaleWithColor(c.Color)
		drawOp.ColorScale.ScaleAlpha(c.Alpha)
		screen.DrawImage(px, drawOp)
	})
}
