package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/fonts"
	"github.com/automoto/playmates/network"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	boardWidth      = 260
	nameLabelWidth  = 260
	nameLabelHeight = 34
	statusDotRadius = 5
)

var (
	connectedColor = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	popupTextOp    = &ebiten.DrawImageOptions{}
)

// NameLabelRect is the clickable "Hello NAME!" label in the bottom-left corner.
func NameLabelRect() gamemath.Rect {
	v := Viewport()
	m := cfg.UI.Margin
	return gamemath.RectAt(
		gamemath.Point{X: m, Y: v.H - m - nameLabelHeight},
		gamemath.Size{W: nameLabelWidth, H: nameLabelHeight},
	)
}

// DrawHUD renders the leaderboard panel, the cage counter and the name label.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLeaderboard(ecs, screen)
	drawCageCounter(ecs, screen)
	drawNameLabel(ecs, screen)

	settings := GetOrCreateSettings(ecs)
	if settings.Muted {
		v := Viewport()
		face := fonts.Small.Get()
		label := "muted (M)"
		w := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, int(v.W-cfg.UI.Margin)-w, int(v.H-cfg.UI.Margin), cfg.UI.MutedTextColor)
	}
}

func drawLeaderboard(ecs *ecs.ECS, screen *ebiten.Image) {
	m := cfg.UI.Margin
	lh := cfg.UI.LineHeight

	lb := leaderboardData(ecs)
	rows := 0
	if lb != nil {
		rows = min(len(lb.Entries), cfg.Leaderboard.Rows)
	}
	panelH := 70 + lh*float64(max(rows, 1)) + 30
	vector.FillRect(screen, float32(m), float32(m), boardWidth, float32(panelH), cfg.UI.PanelColor, false)

	x := int(m) + 10
	y := int(m) + 32
	text.Draw(screen, cfg.UI.Title, fonts.Bold.Get(), x, y, cfg.UI.TextColor)
	y += 22
	text.Draw(screen, cfg.UI.Subtitle, fonts.Small.Get(), x, y, cfg.UI.MutedTextColor)
	y += int(lh) + 4

	body := fonts.Body.Get()
	offline := lb == nil || lb.Client == nil

	switch {
	case offline:
		text.Draw(screen, cfg.UI.EmptyBoard, body, x, y, cfg.UI.MutedTextColor)
		y += int(lh)
	case !lb.Loaded:
		text.Draw(screen, "Loading...", body, x, y, cfg.UI.MutedTextColor)
		y += int(lh)
	case rows == 0:
		text.Draw(screen, cfg.UI.EmptyBoard, body, x, y, cfg.UI.MutedTextColor)
		y += int(lh)
	default:
		for i := 0; i < rows; i++ {
			p := lb.Entries[i]
			text.Draw(screen, fmt.Sprintf("%d. %s", i+1, p.Username), body, x, y, cfg.UI.TextColor)
			count := fmt.Sprintf("%d", p.CaughtButterflies)
			cw := text.BoundString(body, count).Dx()
			text.Draw(screen, count, body, int(m)+boardWidth-10-cw, y, cfg.UI.TextColor)
			y += int(lh)
		}
	}

	state := network.StateUnhealthy
	if !offline {
		state = lb.State
	}
	drawConnectionStatus(screen, state, x, y+8)
}

func drawConnectionStatus(screen *ebiten.Image, state network.ConnState, x, y int) {
	label, c := "Connecting...", cfg.UI.MutedTextColor
	switch state {
	case network.StateHealthy:
		label, c = "Connected", connectedColor
	case network.StateUnhealthy:
		label, c = "Connection Issues", cfg.UI.ErrorColor
	}
	vector.FillCircle(screen, float32(x+statusDotRadius), float32(y-statusDotRadius), statusDotRadius, c, true)
	text.Draw(screen, label, fonts.Small.Get(), x+statusDotRadius*2+6, y, c)
}

// drawCageCounter shows the caught count under the cage, or the saving
// notice while a submission is in flight.
func drawCageCounter(ecs *ecs.ECS, screen *ebiten.Image) {
	rect, ok := CageRect(ecs)
	if !ok {
		return
	}
	s := GetOrCreateSession(ecs)
	face := fonts.Body.Get()

	label := fmt.Sprintf("x %d", s.Caught)
	c := cfg.UI.TextColor
	if s.Saving {
		label, c = cfg.UI.SavingText, cfg.UI.MutedTextColor
	}
	drawCentered(screen, label, face, rect.Center().X, rect.Bottom+cfg.UI.LineHeight, c)
}

func drawNameLabel(ecs *ecs.ECS, screen *ebiten.Image) {
	r := NameLabelRect()
	settings := GetOrCreateSettings(ecs)
	s := GetOrCreateSession(ecs)

	vector.FillRect(screen, float32(r.Left), float32(r.Top), float32(r.Right-r.Left), float32(r.Bottom-r.Top), cfg.UI.PanelColor, false)

	face := fonts.Body.Get()
	x := int(r.Left) + 10
	y := int(r.Bottom) - 11

	switch {
	case settings.EditingName:
		// The name field draws itself on top.
	case s.Name() != "":
		text.Draw(screen, fmt.Sprintf("Hello %s!", s.Name()), face, x, y, cfg.UI.TextColor)
	default:
		text.Draw(screen, cfg.UI.NamePrompt, face, x, y, cfg.UI.MutedTextColor)
	}
}

// DrawPopup renders the catch popup in the middle of the screen.
func DrawPopup(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Popup.First(ecs.World)
	if !ok {
		return
	}
	p := components.Popup.Get(entry)
	v := Viewport()

	face := fonts.Popup.Get()
	b := text.BoundString(face, cfg.UI.PopupText)
	w, h := float64(b.Dx()), float64(b.Dy())
	scale := float64(p.Scale)

	pw, ph := (w+60)*scale, (h+40)*scale
	vector.FillRect(screen, float32(v.W/2-pw/2), float32(v.H/2-ph/2), float32(pw), float32(ph), cfg.Overlay, true)

	popupTextOp.GeoM.Reset()
	popupTextOp.ColorScale.Reset()
	popupTextOp.GeoM.Translate(-w/2-float64(b.Min.X), -h/2-float64(b.Min.Y))
	popupTextOp.GeoM.Scale(scale, scale)
	popupTextOp.GeoM.Translate(v.W/2, v.H/2)
	popupTextOp.ColorScale.ScaleWithColor(cfg.White)
	text.DrawWithOptions(screen, cfg.UI.PopupText, face, popupTextOp)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, baseline float64, c color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int(cx)-w/2, int(baseline), c)
}
