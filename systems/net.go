package systems

import (
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/catchnet"
	"github.com/automoto/playmates/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable handle slice for catch checks
var catchHandles []catchnet.MotionHandle

// UpdateNet drives the net from the pointer. Every pointer move during a drag
// re-checks the net against the catchable butterflies.
func UpdateNet(e *ecs.ECS) {
	entry, ok := tags.Net.First(e.World)
	if !ok {
		return
	}
	net := components.Net.Get(entry)
	p := &getOrCreateInput(e).Pointer
	settings := GetOrCreateSettings(e)

	net.Hover = net.Hit(p.Position)

	switch {
	case p.JustPressed && net.Hover && !settings.EditingName && p.Claim():
		// A claimed press never counts as a click on the cage below.
		net.BeginDrag(p.Position)
	case p.JustReleased || !p.Pressed:
		net.EndDrag()
	case net.Dragging && p.Position != net.Position.Add(net.GrabOffset()):
		net.Move(p.Position, CatchableHandles(e))
	}

	if cfg.Net.GrabCursor {
		if net.Dragging || net.Hover {
			ebiten.SetCursorShape(ebiten.CursorShapeMove)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
}

// CatchableHandles returns a handle for every live catchable butterfly.
func CatchableHandles(e *ecs.ECS) []catchnet.MotionHandle {
	catchHandles = catchHandles[:0]
	tags.Butterfly.Each(e.World, func(entry *donburi.Entry) {
		if components.Butterfly.Get(entry).Catchable {
			catchHandles = append(catchHandles, components.MotionHandle{Entry: entry})
		}
	})
	return catchHandles
}

// ResizeNet applies the breakpoint size for a new viewport width. The net
// keeps its position.
func ResizeNet(e *ecs.ECS) {
	entry, ok := tags.Net.First(e.World)
	if !ok {
		return
	}
	components.Net.Get(entry).Resize(Viewport().W)
}
