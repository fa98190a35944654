package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/playmates/components"
	"github.com/automoto/playmates/fonts"
	"github.com/automoto/playmates/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// velocity vectors are drawn this many frames long
const debugVelocityScale = 8

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCatchable) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvButterfly) {
				c = color.RGBA{255, 200, 0, 255} // Orange
			} else if obj.HasTags(tags.ResolvNet) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvCage) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Butterfly.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Butterfly.Get(e)
		if !b.Body.Alive() {
			return
		}
		cx := b.Body.Position.X + b.Bounds.W/2
		cy := b.Body.Position.Y + b.Bounds.H/2
		vector.StrokeLine(screen,
			float32(cx), float32(cy),
			float32(cx+b.Body.Velocity.X*debugVelocityScale), float32(cy+b.Body.Velocity.Y*debugVelocityScale),
			1, color.RGBA{255, 0, 255, 255}, false)
	})

	s := GetOrCreateSession(ecs)
	v := Viewport()
	info := fmt.Sprintf("%.0fx%.0f  caught=%d slot=%s key=%d  fps=%.0f",
		v.W, v.H, s.Caught, s.Slot, s.Key, ebiten.ActualFPS())
	text.Draw(screen, info, fonts.Small.Get(), 8, int(v.H)-60, color.White)

	if client := leaderboardClient(ecs); client != nil {
		if err := client.LastError(); err != nil {
			text.Draw(screen, "leaderboard: "+err.Error(), fonts.Small.Get(), 8, int(v.H)-76, color.RGBA{255, 120, 120, 255})
		}
	}
}
