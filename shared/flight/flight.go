// Package flight integrates butterfly motion one animation frame at a time.
//
// A Body is advanced by Step exactly once per frame: position integration,
// boundary reflection, random velocity jitter and the flutter oscillator that
// drives the vertical wing scale. Step is frame-count based; it never looks at
// wall-clock time.
package flight

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/playmates/shared/gamemath"
)

// Rand is the source of uniform samples in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source for deterministic simulations.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SmallViewportWidth is the breakpoint at or below which a viewport counts as small.
const SmallViewportWidth = 768

// IsSmall reports whether a viewport of the given width uses the small-device tuning.
func IsSmall(viewportWidth float64) bool {
	return viewportWidth <= SmallViewportWidth
}

// Env carries the per-frame environment a Body is simulated in.
type Env struct {
	Viewport gamemath.Size

	JitterChance float64 // per-axis probability of redrawing velocity
	JitterSpan   float64 // width of the redraw range, centered on zero

	FlutterDecay     float64 // multiplier applied to the phase every frame
	FlutterFloor     float64 // |phase| below this reseeds to +1 or -1
	FlutterAmplitude float64 // vertical scale = 1 + phase*amplitude
}

// NewEnv returns the standard tuning for a viewport.
// Small viewports get a narrower jitter range.
func NewEnv(viewport gamemath.Size) Env {
	span := 4.0
	if IsSmall(viewport.W) {
		span = 3.0
	}
	return Env{
		Viewport:         viewport,
		JitterChance:     0.02,
		JitterSpan:       span,
		FlutterDecay:     -0.95,
		FlutterFloor:     0.1,
		FlutterAmplitude: 0.1,
	}
}

// Bounds is the rendered size of a body. Known is false until the sprite has
// been measured at least once.
type Bounds struct {
	gamemath.Size
	Known bool
}

// Transform is what the renderer needs to place a body on screen.
type Transform struct {
	X, Y   float64
	ScaleX float64 // horizontal mirroring, -1 or 1
	ScaleY float64 // flutter scale
}

// Body is the mutable simulation state of one butterfly.
type Body struct {
	Position     gamemath.Point
	Velocity     gamemath.Vector
	Flip         float64
	FlutterPhase float64
	Variant      int

	dead bool
	last Transform
}

// NewBody creates a live body facing right with a fully excited flutter phase.
func NewBody(pos gamemath.Point, vel gamemath.Vector, variant int) Body {
	b := Body{
		Position:     pos,
		Velocity:     vel,
		Flip:         1,
		FlutterPhase: 1,
		Variant:      variant,
	}
	b.last = b.transform(1)
	return b
}

// Alive reports whether the body still accepts ticks.
func (b *Body) Alive() bool {
	return !b.dead
}

// Kill stops the body. Any later Step is a no-op.
func (b *Body) Kill() {
	b.dead = true
}

// Last returns the transform produced by the most recent Step.
func (b *Body) Last() Transform {
	return b.last
}

// Step advances the body by one frame and returns its new transform.
func (b *Body) Step(env Env, bounds Bounds, rng Rand) Transform {
	if b.dead {
		return b.last
	}

	b.Position = b.Position.Add(b.Velocity)

	if bounds.Known {
		b.reflect(env.Viewport, bounds.Size)
	}

	b.Velocity.X = jitter(b.Velocity.X, env, rng)
	b.Velocity.Y = jitter(b.Velocity.Y, env, rng)

	scaleY := b.flutter(env, rng)

	b.last = b.transform(scaleY)
	return b.last
}

// reflect bounces off the viewport edges. Both axes are tested every frame so a
// body wedged in a corner flips both components at once.
func (b *Body) reflect(viewport, size gamemath.Size) {
	if b.Position.X <= 0 || b.Position.X+size.W >= viewport.W {
		b.Velocity.X = -b.Velocity.X
		b.Flip = gamemath.Sign(b.Velocity.X)
	}
	if b.Position.Y <= 0 || b.Position.Y+size.H >= viewport.H {
		b.Velocity.Y = -b.Velocity.Y
	}

	b.Position.X = gamemath.Clamp(b.Position.X, 0, viewport.W-size.W)
	b.Position.Y = gamemath.Clamp(b.Position.Y, 0, viewport.H-size.H)
}

func jitter(v float64, env Env, rng Rand) float64 {
	if rng.Float64() < env.JitterChance {
		return gamemath.Centered(rng.Float64(), env.JitterSpan)
	}
	return v
}

// flutter runs the damped wing-beat oscillator and returns the vertical scale.
// The phase reseeds to a full beat whenever it decays below the floor, so it
// never settles at zero.
func (b *Body) flutter(env Env, rng Rand) float64 {
	b.FlutterPhase *= env.FlutterDecay
	if math.Abs(b.FlutterPhase) < env.FlutterFloor {
		if rng.Float64() < 0.5 {
			b.FlutterPhase = -1
		} else {
			b.FlutterPhase = 1
		}
	}
	return 1 + b.FlutterPhase*env.FlutterAmplitude
}

func (b *Body) transform(scaleY float64) Transform {
	return Transform{
		X:      b.Position.X,
		Y:      b.Position.Y,
		ScaleX: b.Flip,
		ScaleY: scaleY,
	}
}
