package factory

import (
	"github.com/automoto/playmates/archetypes"
	"github.com/automoto/playmates/assets"
	"github.com/automoto/playmates/assets/animations"
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/flight"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/automoto/playmates/shared/spawn"
	"github.com/automoto/playmates/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlightEnv returns the motion tuning for a viewport with config overrides applied.
func FlightEnv(viewport gamemath.Size) flight.Env {
	env := flight.NewEnv(viewport)
	env.JitterChance = cfg.Butterfly.JitterChance
	env.JitterSpan = cfg.JitterSpan(viewport.W)
	env.FlutterDecay = cfg.Butterfly.FlutterDecay
	env.FlutterFloor = cfg.Butterfly.FlutterFloor
	env.FlutterAmplitude = cfg.Butterfly.FlutterAmplitude
	return env
}

// ButterflySize returns the rendered butterfly size for a viewport.
func ButterflySize(viewport gamemath.Size) gamemath.Size {
	w := cfg.ButterflyWidth(viewport.W)
	return gamemath.Size{W: w, H: w * cfg.Butterfly.Aspect}
}

// CreatePrey spawns the catchable free-roaming butterfly for a slot key.
func CreatePrey(ecs *ecs.ECS, viewport gamemath.Size, key uint64, rng flight.Rand) *donburi.Entry {
	body := spawn.FreeRoam(FlightEnv(viewport), ButterflySize(viewport), rng)
	e := createButterfly(ecs, body, ButterflySize(viewport), rng)
	e.AddComponent(tags.Prey)

	b := components.Butterfly.Get(e)
	b.Catchable = true
	b.Key = key
	components.Object.Get(e).AddTags(tags.ResolvCatchable)
	return e
}

// CreateReleaseBurst spawns n butterflies flying outward from origin.
func CreateReleaseBurst(ecs *ecs.ECS, viewport gamemath.Size, origin gamemath.Point, n int, rng flight.Rand) []*donburi.Entry {
	bodies := spawn.ReleaseBurst(origin, n, rng)
	size := ButterflySize(viewport)

	entries := make([]*donburi.Entry, 0, len(bodies))
	for _, body := range bodies {
		e := createButterfly(ecs, body, size, rng)
		e.AddComponent(tags.Released)
		if cfg.Release.CatchableReleased {
			components.Butterfly.Get(e).Catchable = true
			components.Object.Get(e).AddTags(tags.ResolvCatchable)
		}
		entries = append(entries, e)
	}
	return entries
}

func createButterfly(ecs *ecs.ECS, body flight.Body, size gamemath.Size, rng flight.Rand) *donburi.Entry {
	e := archetypes.Butterfly.Spawn(ecs)

	// Bounds stay unknown until the first draw measures the sprite.
	components.Butterfly.SetValue(e, components.ButterflyData{
		Body:      body,
		Transform: body.Last(),
	})

	obj := resolv.NewObject(body.Position.X, body.Position.Y, size.W, size.H, tags.ResolvButterfly)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	frames := assets.ButterflyFrames()
	anim := animations.FromDef(cfg.WingBeat)
	anim.Seek(int(rng.Float64() * float64(len(frames))))

	tint := cfg.White
	if body.Variant >= 1 && body.Variant <= len(cfg.VariantTints) {
		tint = cfg.VariantTints[body.Variant-1]
	}
	components.Animation.SetValue(e, components.AnimationData{
		Current:     anim,
		Frames:      frames,
		FrameWidth:  assets.ButterflyFrameWidth,
		FrameHeight: assets.ButterflyFrameHeight,
		Tint:        tint,
	})
	return e
}
