package systems

import (
	"github.com/automoto/playmates/components"
	"github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors butterfly and net rectangles into the resolv space
// and flags the net when a catchable butterfly is in a neighboring cell.
func UpdateObjects(ecs *ecs.ECS) {
	size := factory.ButterflySize(Viewport())

	tags.Butterfly.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Butterfly.Get(e)
		obj := components.Object.Get(e)
		obj.X, obj.Y = b.Body.Position.X, b.Body.Position.Y
		obj.W, obj.H = size.W, size.H
	})

	if entry, ok := tags.Net.First(ecs.World); ok {
		net := components.Net.Get(entry)
		obj := components.Object.Get(entry)
		obj.X, obj.Y = net.Position.X, net.Position.Y
		obj.W, obj.H = net.Size.W, net.Size.H
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()
	})

	if entry, ok := tags.Net.First(ecs.World); ok {
		net := components.Net.Get(entry)
		obj := components.Object.Get(entry)
		net.Near = obj.Check(0, 0, tags.ResolvCatchable) != nil
	}
}
