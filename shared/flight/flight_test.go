package flight

import (
	"math"
	"testing"

	"github.com/automoto/playmates/shared/gamemath"
)

// scripted returns the queued samples in order and then repeats the fallback.
type scripted struct {
	samples  []float64
	fallback float64
}

func (s *scripted) Float64() float64 {
	if len(s.samples) == 0 {
		return s.fallback
	}
	v := s.samples[0]
	s.samples = s.samples[1:]
	return v
}

// noJitter never triggers a velocity redraw and never reseeds toward -1.
func noJitter() *scripted {
	return &scripted{fallback: 0.99}
}

var desktop = gamemath.Size{W: 1280, H: 720}

func known(w, h float64) Bounds {
	return Bounds{Size: gamemath.Size{W: w, H: h}, Known: true}
}

func TestStepIntegratesVelocity(t *testing.T) {
	b := NewBody(gamemath.Point{X: 100, Y: 100}, gamemath.Vector{X: 2, Y: -1}, 3)
	tr := b.Step(NewEnv(desktop), known(100, 80), noJitter())

	if tr.X != 102 || tr.Y != 99 {
		t.Fatalf("expected (102, 99), got (%v, %v)", tr.X, tr.Y)
	}
	if tr.ScaleX != 1 {
		t.Fatalf("expected no flip, got %v", tr.ScaleX)
	}
}

func TestStepReflectsOffLeftEdge(t *testing.T) {
	b := NewBody(gamemath.Point{X: -3, Y: 100}, gamemath.Vector{X: -2, Y: 0}, 1)
	b.Flip = -1

	b.Step(NewEnv(desktop), known(100, 80), noJitter())

	if b.Velocity.X != 2 {
		t.Fatalf("expected velocity.x = 2, got %v", b.Velocity.X)
	}
	if b.Flip != 1 {
		t.Fatalf("expected flip = 1, got %v", b.Flip)
	}
	if b.Position.X < 0 {
		t.Fatalf("expected position clamped into viewport, got %v", b.Position.X)
	}
}

func TestStepReflectsBothAxesInCorner(t *testing.T) {
	b := NewBody(gamemath.Point{X: 1178, Y: 638}, gamemath.Vector{X: 3, Y: 3}, 1)

	b.Step(NewEnv(desktop), known(100, 80), noJitter())

	if b.Velocity.X != -3 || b.Velocity.Y != -3 {
		t.Fatalf("expected both axes reflected, got %+v", b.Velocity)
	}
	if b.Flip != -1 {
		t.Fatalf("expected flip = -1 after bouncing off the right edge, got %v", b.Flip)
	}
}

func TestStepSkipsReflectionWithoutBounds(t *testing.T) {
	b := NewBody(gamemath.Point{X: -3, Y: -3}, gamemath.Vector{X: -2, Y: -2}, 1)

	b.Step(NewEnv(desktop), Bounds{}, noJitter())

	if b.Velocity.X != -2 || b.Velocity.Y != -2 {
		t.Fatalf("unmeasured body must not reflect, got %+v", b.Velocity)
	}
	if b.Position.X != -5 || b.Position.Y != -5 {
		t.Fatalf("unmeasured body must still integrate, got %+v", b.Position)
	}
}

func TestStepKeepsBodyInsideViewport(t *testing.T) {
	env := NewEnv(gamemath.Size{W: 800, H: 600})
	rng := NewRand(42)
	size := known(100, 75)

	b := NewBody(gamemath.Point{X: 350, Y: 260}, gamemath.Vector{X: 4.5, Y: -3.2}, 5)
	for i := 0; i < 20000; i++ {
		b.Step(env, size, rng)
		if b.Position.X < 0 || b.Position.X > env.Viewport.W-size.W {
			t.Fatalf("tick %d: x out of bounds: %v", i, b.Position.X)
		}
		if b.Position.Y < 0 || b.Position.Y > env.Viewport.H-size.H {
			t.Fatalf("tick %d: y out of bounds: %v", i, b.Position.Y)
		}
	}
}

func TestJitterStaysInRange(t *testing.T) {
	tests := []struct {
		name     string
		viewport gamemath.Size
		limit    float64
	}{
		{"desktop", desktop, 2},
		{"small", gamemath.Size{W: 390, H: 844}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(tt.viewport)
			env.JitterChance = 1 // redraw every frame
			rng := NewRand(7)

			b := NewBody(gamemath.Point{X: 100, Y: 100}, gamemath.Vector{}, 1)
			for i := 0; i < 5000; i++ {
				b.Step(env, Bounds{}, rng)
				if math.Abs(b.Velocity.X) > tt.limit || math.Abs(b.Velocity.Y) > tt.limit {
					t.Fatalf("tick %d: velocity %+v outside ±%v", i, b.Velocity, tt.limit)
				}
				b.Position = gamemath.Point{X: 100, Y: 100}
			}
		})
	}
}

func TestJitterRedrawsFromCenteredRange(t *testing.T) {
	// x redraws with sample 0.0 -> -2, y keeps its velocity, flutter stays positive.
	rng := &scripted{samples: []float64{0.01, 0.0, 0.5}, fallback: 0.99}
	b := NewBody(gamemath.Point{X: 500, Y: 300}, gamemath.Vector{X: 1, Y: 1}, 1)

	b.Step(NewEnv(desktop), known(100, 80), rng)

	if b.Velocity.X != -2 {
		t.Fatalf("expected redraw to -2, got %v", b.Velocity.X)
	}
	if b.Velocity.Y != 1 {
		t.Fatalf("expected y untouched, got %v", b.Velocity.Y)
	}
}

func TestFlutterNeverConverges(t *testing.T) {
	env := NewEnv(desktop)
	rng := NewRand(99)
	b := NewBody(gamemath.Point{X: 300, Y: 300}, gamemath.Vector{}, 1)

	inside := 0
	for i := 0; i < 10000; i++ {
		tr := b.Step(env, Bounds{}, rng)
		if math.Abs(b.FlutterPhase) < env.FlutterFloor {
			inside++
			if inside > 1 {
				t.Fatalf("tick %d: flutter phase stuck near zero (%v)", i, b.FlutterPhase)
			}
		} else {
			inside = 0
		}
		if tr.ScaleY < 0.9-1e-9 || tr.ScaleY > 1.1+1e-9 {
			t.Fatalf("tick %d: scale %v outside [0.9, 1.1]", i, tr.ScaleY)
		}
	}
}

func TestFlutterReseedsFromZero(t *testing.T) {
	b := NewBody(gamemath.Point{}, gamemath.Vector{}, 1)
	b.FlutterPhase = 0

	tr := b.Step(NewEnv(desktop), Bounds{}, &scripted{samples: []float64{0.99, 0.99, 0.2}})

	if b.FlutterPhase != -1 {
		t.Fatalf("expected reseed to -1, got %v", b.FlutterPhase)
	}
	if math.Abs(tr.ScaleY-0.9) > 1e-9 {
		t.Fatalf("expected scale 0.9, got %v", tr.ScaleY)
	}
}

func TestDeadBodyIgnoresTicks(t *testing.T) {
	b := NewBody(gamemath.Point{X: 10, Y: 10}, gamemath.Vector{X: 1, Y: 1}, 1)
	before := b.Step(NewEnv(desktop), known(100, 80), noJitter())

	b.Kill()
	after := b.Step(NewEnv(desktop), known(100, 80), noJitter())

	if b.Alive() {
		t.Fatalf("expected body to be dead")
	}
	if after != before {
		t.Fatalf("dead body moved: %+v -> %+v", before, after)
	}
}
