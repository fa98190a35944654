// Package spawn decides where new butterflies appear and how they start moving.
package spawn

import (
	"math"

	"github.com/automoto/playmates/shared/flight"
	"github.com/automoto/playmates/shared/gamemath"
)

// VariantCount is the number of butterfly looks.
const VariantCount = 10

// Burst tuning for caged releases.
const (
	BurstJitter   = 15.0 // max offset from the origin per axis
	BurstMinSpeed = 2.0
	BurstMaxSpeed = 5.0
)

// Variant picks a look uniformly in [1, VariantCount].
func Variant(rng flight.Rand) int {
	v := int(rng.Float64()*VariantCount) + 1
	if v > VariantCount {
		v = VariantCount
	}
	return v
}

// FreeRoam creates a butterfly somewhere inside the viewport with a small random
// velocity. sprite is the expected rendered size, used to keep the spawn fully
// on screen.
func FreeRoam(env flight.Env, sprite gamemath.Size, rng flight.Rand) flight.Body {
	pos := gamemath.Point{
		X: rng.Float64() * math.Max(0, env.Viewport.W-sprite.W),
		Y: rng.Float64() * math.Max(0, env.Viewport.H-sprite.H),
	}
	vel := gamemath.Vector{
		X: gamemath.Centered(rng.Float64(), env.JitterSpan),
		Y: gamemath.Centered(rng.Float64(), env.JitterSpan),
	}
	return flight.NewBody(pos, vel, Variant(rng))
}

// ReleaseBurst creates n butterflies around origin, each flying outward in a
// random direction. Positions are jittered so the burst never starts as a single
// stacked sprite.
func ReleaseBurst(origin gamemath.Point, n int, rng flight.Rand) []flight.Body {
	if n <= 0 {
		return nil
	}

	bodies := make([]flight.Body, 0, n)
	for i := 0; i < n; i++ {
		pos := origin.Add(gamemath.Vector{
			X: gamemath.Centered(rng.Float64(), 2*BurstJitter),
			Y: gamemath.Centered(rng.Float64(), 2*BurstJitter),
		})

		angle := rng.Float64() * 2 * math.Pi
		speed := gamemath.UniformRange(rng.Float64(), BurstMinSpeed, BurstMaxSpeed)
		vel := gamemath.Vector{
			X: math.Cos(angle) * speed,
			Y: math.Sin(angle) * speed,
		}

		bodies = append(bodies, flight.NewBody(pos, vel, Variant(rng)))
	}
	return bodies
}
