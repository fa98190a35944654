package assets

import (
	"image"
	"image/color"

	"github.com/automoto/playmates/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Base resolution of the procedural art. Renderers scale it to the
// responsive sizes in config.
const (
	ButterflyFrameWidth  = 100
	ButterflyFrameHeight = 80
	NetArtSize           = 200
	CageArtSize          = 64

	discSize = 64
)

var (
	butterflyStrip  *ebiten.Image
	butterflyFrames []*ebiten.Image
	netImage        *ebiten.Image
	cageImage       *ebiten.Image
	discImage       *ebiten.Image
	whitePixel      *ebiten.Image
)

var (
	wingLight = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	wingEdge  = color.RGBA{R: 40, G: 30, B: 30, A: 255}
	bodyColor = color.RGBA{R: 45, G: 35, B: 30, A: 255}
)

// PreloadSprites renders every procedural image up front.
func PreloadSprites() {
	ButterflyFrames()
	NetImage()
	CageImage()
	WhitePixel()
}

// WhitePixel returns a 1x1 white image for drawing tinted rectangles.
func WhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func disc() *ebiten.Image {
	if discImage == nil {
		discImage = ebiten.NewImage(discSize, discSize)
		vector.FillCircle(discImage, discSize/2, discSize/2, discSize/2, color.White, true)
	}
	return discImage
}

// drawEllipse draws a filled ellipse centered at (cx, cy) by scaling the unit disc.
func drawEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-discSize/2, -discSize/2)
	op.GeoM.Scale(2*rx/discSize, 2*ry/discSize)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(disc(), op)
}

// ButterflyFrames returns the wing-beat strip sliced into frames. Wings are
// drawn light grey so the tint shader can recolor them per variant.
func ButterflyFrames() []*ebiten.Image {
	if butterflyFrames != nil {
		return butterflyFrames
	}

	n := max(config.Butterfly.WingFrames, 1)
	butterflyStrip = ebiten.NewImage(ButterflyFrameWidth*n, ButterflyFrameHeight)
	butterflyFrames = make([]*ebiten.Image, n)

	for i := 0; i < n; i++ {
		ox := float64(i * ButterflyFrameWidth)
		// 1.0 = wings fully open, shrinking toward a closed beat
		open := 1.0
		if n > 1 {
			open = 1 - 0.65*float64(i)/float64(n-1)
		}
		drawButterfly(butterflyStrip, ox, open)

		rect := image.Rect(i*ButterflyFrameWidth, 0, (i+1)*ButterflyFrameWidth, ButterflyFrameHeight)
		butterflyFrames[i] = butterflyStrip.SubImage(rect).(*ebiten.Image)
	}
	return butterflyFrames
}

func drawButterfly(dst *ebiten.Image, ox, open float64) {
	cx := ox + ButterflyFrameWidth/2
	cy := float64(ButterflyFrameHeight) / 2

	for _, side := range []float64{-1, 1} {
		// upper wing
		ux := cx + side*24*open
		drawEllipse(dst, ux, cy-12, 25*open+1, 22, wingEdge)
		drawEllipse(dst, ux, cy-12, 22*open, 19, wingLight)
		drawEllipse(dst, ux+side*8*open, cy-18, 5*open+1, 5, wingEdge)

		// lower wing
		lx := cx + side*17*open
		drawEllipse(dst, lx, cy+16, 17*open+1, 15, wingEdge)
		drawEllipse(dst, lx, cy+16, 14*open, 12, wingLight)
	}

	// body and antennae
	drawEllipse(dst, cx, cy, 4, 22, bodyColor)
	drawEllipse(dst, cx, cy-24, 4, 4, bodyColor)
	vector.StrokeLine(dst, float32(cx-1), float32(cy-26), float32(cx-9), float32(cy-38), 1.5, bodyColor, true)
	vector.StrokeLine(dst, float32(cx+1), float32(cy-26), float32(cx+9), float32(cy-38), 1.5, bodyColor, true)
	vector.FillCircle(dst, float32(cx-9), float32(cy-38), 2, bodyColor, true)
	vector.FillCircle(dst, float32(cx+9), float32(cy-38), 2, bodyColor, true)
}

// NetImage returns the net facing right: hoop on the right, handle to the
// lower left.
func NetImage() *ebiten.Image {
	if netImage != nil {
		return netImage
	}
	netImage = ebiten.NewImage(NetArtSize, NetArtSize)

	const (
		hoopX = NetArtSize * 0.62
		hoopY = NetArtSize * 0.38
		hoopR = NetArtSize * 0.3
	)

	// handle
	vector.StrokeLine(netImage, hoopX-hoopR*0.7, hoopY+hoopR*0.7, NetArtSize*0.06, NetArtSize*0.94, 9, config.Net.HandleColor, true)

	// mesh
	vector.FillCircle(netImage, hoopX, hoopY, hoopR, config.Net.MeshColor, true)
	for i := -3; i <= 3; i++ {
		d := float32(i) * hoopR / 4
		vector.StrokeLine(netImage, hoopX+d, hoopY-hoopR+4, hoopX+d, hoopY+hoopR-4, 1, wingEdge, true)
		vector.StrokeLine(netImage, hoopX-hoopR+4, hoopY+d, hoopX+hoopR-4, hoopY+d, 1, wingEdge, true)
	}

	// hoop
	vector.StrokeCircle(netImage, hoopX, hoopY, hoopR, 6, config.Net.HoopColor, true)
	return netImage
}

// CageImage returns the cage the caught butterflies wait in.
func CageImage() *ebiten.Image {
	if cageImage != nil {
		return cageImage
	}
	cageImage = ebiten.NewImage(CageArtSize, CageArtSize)

	const (
		top    = 12
		bottom = CageArtSize - 6
		left   = 8
		right  = CageArtSize - 8
	)

	vector.StrokeCircle(cageImage, CageArtSize/2, 8, 5, 2, config.Wood, true)
	vector.FillRect(cageImage, left-3, top-3, right-left+6, 5, config.Wood, false)
	vector.FillRect(cageImage, left-3, bottom-2, right-left+6, 5, config.Wood, false)
	for x := float32(left); x <= right; x += (right - left) / 5 {
		vector.StrokeLine(cageImage, x, top, x, bottom, 2, config.Wood, false)
	}
	return cageImage
}
