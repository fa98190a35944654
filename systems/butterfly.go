package systems

import (
	"github.com/automoto/playmates/components"
	"github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateButterflies advances every live butterfly by exactly one tick.
func UpdateButterflies(e *ecs.ECS) {
	env := factory.FlightEnv(Viewport())

	tags.Butterfly.Each(e.World, func(entry *donburi.Entry) {
		b := components.Butterfly.Get(entry)
		if !b.Body.Alive() {
			return
		}
		b.Transform = b.Body.Step(env, b.Bounds, rng)

		anim := components.Animation.Get(entry)
		if anim.Current != nil {
			anim.Current.Update()
		}
	})
}

// ClearReleased removes the previous release burst.
func ClearReleased(e *ecs.ECS) {
	var toDestroy []*donburi.Entry
	tags.Released.Each(e.World, func(entry *donburi.Entry) {
		components.Butterfly.Get(entry).Body.Kill()
		toDestroy = append(toDestroy, entry)
	})
	for _, entry := range toDestroy {
		factory.Destroy(e, entry)
	}
}
