package spawn

import (
	"math"
	"testing"

	"github.com/automoto/playmates/shared/flight"
	"github.com/automoto/playmates/shared/gamemath"
)

func TestReleaseBurstShape(t *testing.T) {
	origin := gamemath.Point{X: 100, Y: 100}
	rng := flight.NewRand(1)

	for round := 0; round < 200; round++ {
		bodies := ReleaseBurst(origin, 5, rng)
		if len(bodies) != 5 {
			t.Fatalf("expected 5 bodies, got %d", len(bodies))
		}
		for i, b := range bodies {
			if math.Abs(b.Position.X-origin.X) > BurstJitter || math.Abs(b.Position.Y-origin.Y) > BurstJitter {
				t.Fatalf("body %d too far from origin: %+v", i, b.Position)
			}
			speed := math.Hypot(b.Velocity.X, b.Velocity.Y)
			if speed < BurstMinSpeed-1e-9 || speed >= BurstMaxSpeed {
				t.Fatalf("body %d speed %v outside [2, 5)", i, speed)
			}
			if b.Variant < 1 || b.Variant > VariantCount {
				t.Fatalf("body %d variant %d out of range", i, b.Variant)
			}
			if !b.Alive() {
				t.Fatalf("body %d spawned dead", i)
			}
		}
	}
}

func TestReleaseBurstEmpty(t *testing.T) {
	if got := ReleaseBurst(gamemath.Point{}, 0, flight.NewRand(1)); len(got) != 0 {
		t.Fatalf("expected no bodies, got %d", len(got))
	}
	if got := ReleaseBurst(gamemath.Point{}, -3, flight.NewRand(1)); len(got) != 0 {
		t.Fatalf("expected no bodies, got %d", len(got))
	}
}

func TestFreeRoamStaysOnScreen(t *testing.T) {
	tests := []struct {
		name   string
		view   gamemath.Size
		sprite gamemath.Size
		limit  float64
	}{
		{"desktop", gamemath.Size{W: 1280, H: 720}, gamemath.Size{W: 100, H: 100}, 2},
		{"phone", gamemath.Size{W: 390, H: 844}, gamemath.Size{W: 60, H: 60}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := flight.NewEnv(tt.view)
			rng := flight.NewRand(3)
			for i := 0; i < 1000; i++ {
				b := FreeRoam(env, tt.sprite, rng)
				if b.Position.X < 0 || b.Position.X >= tt.view.W-tt.sprite.W {
					t.Fatalf("x out of range: %v", b.Position.X)
				}
				if b.Position.Y < 0 || b.Position.Y >= tt.view.H-tt.sprite.H {
					t.Fatalf("y out of range: %v", b.Position.Y)
				}
				if math.Abs(b.Velocity.X) > tt.limit || math.Abs(b.Velocity.Y) > tt.limit {
					t.Fatalf("velocity out of range: %+v", b.Velocity)
				}
				if b.Flip != 1 || b.FlutterPhase != 1 {
					t.Fatalf("unexpected initial animation state: flip=%v phase=%v", b.Flip, b.FlutterPhase)
				}
			}
		})
	}
}

func TestVariantCoversRange(t *testing.T) {
	seen := make(map[int]bool)
	rng := flight.NewRand(11)
	for i := 0; i < 5000; i++ {
		v := Variant(rng)
		if v < 1 || v > VariantCount {
			t.Fatalf("variant %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != VariantCount {
		t.Fatalf("expected all %d variants, saw %d", VariantCount, len(seen))
	}
}
