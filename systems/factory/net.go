package factory

import (
	"github.com/automoto/playmates/archetypes"
	"github.com/automoto/playmates/components"
	"github.com/automoto/playmates/shared/catchnet"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/automoto/playmates/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNet places the net in the middle of the viewport.
func CreateNet(ecs *ecs.ECS, viewport gamemath.Size, onCatch func()) *donburi.Entry {
	e := archetypes.Net.Spawn(ecs)

	ctrl := catchnet.New(viewport, onCatch)
	components.Net.SetValue(e, components.NetData{Controller: ctrl})

	obj := resolv.NewObject(ctrl.Position.X, ctrl.Position.Y, ctrl.Size.W, ctrl.Size.H, tags.ResolvNet)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}
	return e
}
