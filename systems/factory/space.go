package factory

import (
	"github.com/automoto/playmates/archetypes"
	"github.com/automoto/playmates/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Space cell size; sized so a butterfly spans only a few cells.
const spaceCell = 32

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, spaceCell, spaceCell)
	components.Space.Set(space, spaceData)
	return space
}

// GetSpace returns the singleton space, or nil before the scene has built one.
func GetSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// Destroy removes an entry and its resolv object, if any.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if space := GetSpace(ecs); space != nil {
			space.Remove(components.Object.Get(entry).Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}
