package archetypes

import (
	"github.com/automoto/playmates/components"
	"github.com/automoto/playmates/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerWorld is the single draw layer every renderer is registered on.
const LayerWorld ecs.LayerID = 0

var (
	Space = newArchetype(
		components.Space,
	)
	Butterfly = newArchetype(
		tags.Butterfly,
		components.Butterfly,
		components.Object,
		components.Animation,
	)
	Net = newArchetype(
		tags.Net,
		components.Net,
		components.Object,
	)
	Cage = newArchetype(
		tags.Cage,
		components.Object,
	)
	Confetti = newArchetype(
		tags.Confetti,
		components.Confetti,
		components.AutoDestroy,
	)
	Popup = newArchetype(
		tags.Popup,
		components.Popup,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
