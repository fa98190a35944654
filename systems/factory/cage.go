package factory

import (
	"github.com/automoto/playmates/archetypes"
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/automoto/playmates/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CagePosition is the top-left corner of the cage for a viewport.
func CagePosition(viewport gamemath.Size) gamemath.Point {
	return gamemath.Point{
		X: viewport.W - cfg.Release.CageMargin - cfg.Release.CageSize,
		Y: cfg.Release.CageMargin,
	}
}

func CreateCage(ecs *ecs.ECS, viewport gamemath.Size) *donburi.Entry {
	e := archetypes.Cage.Spawn(ecs)

	p := CagePosition(viewport)
	obj := resolv.NewObject(p.X, p.Y, cfg.Release.CageSize, cfg.Release.CageSize, tags.ResolvCage)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}
	return e
}
