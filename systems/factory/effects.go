package factory

import (
	"math"

	"github.com/automoto/playmates/archetypes"
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/flight"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnConfetti launches the release celebration: particles fan upward from
// the lower middle of the viewport within the configured spread.
func SpawnConfetti(ecs *ecs.ECS, viewport gamemath.Size, rng flight.Rand) {
	originX := viewport.W / 2
	originY := viewport.H * cfg.Confetti.OriginY
	spread := cfg.Confetti.SpreadDegrees * math.Pi / 180
	lifetime := cfg.Confetti.LifetimeTicks
	seconds := float32(lifetime) / float32(cfg.C.TPS)

	for i := 0; i < cfg.Confetti.ParticleCount; i++ {
		angle := -math.Pi/2 + gamemath.Centered(rng.Float64(), spread)
		speed := cfg.Confetti.StartSpeed * gamemath.UniformRange(rng.Float64(), 0.45, 1)
		c := cfg.Confetti.Colors[int(rng.Float64()*float64(len(cfg.Confetti.Colors)))%len(cfg.Confetti.Colors)]

		e := archetypes.Confetti.Spawn(ecs)
		components.Confetti.SetValue(e, components.ConfettiData{
			X:        originX,
			Y:        originY,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Angle:    rng.Float64() * 2 * math.Pi,
			Spin:     gamemath.Centered(rng.Float64(), 0.4),
			Size:     cfg.Confetti.ParticleSize * gamemath.UniformRange(rng.Float64(), 0.6, 1.2),
			Color:    c,
			Lifetime: lifetime,
			Fade:     gween.New(1, 0, seconds, ease.InQuart),
			Alpha:    1,
		})
		components.AutoDestroy.SetValue(e, components.AutoDestroyData{FramesRemaining: lifetime})
	}
}

// ClearConfetti removes every particle still on screen.
func ClearConfetti(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry
	components.Confetti.Each(ecs.World, func(e *donburi.Entry) {
		toDestroy = append(toDestroy, e)
	})
	for _, e := range toDestroy {
		Destroy(ecs, e)
	}
}

// SpawnPopup shows the catch popup with a pop-in tween.
func SpawnPopup(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Popup.Spawn(ecs)
	start := cfg.Session.PopupStartScale
	components.Popup.SetValue(e, components.PopupData{
		Tween: gween.New(start, 1, cfg.Session.PopupTweenSeconds, ease.OutBack),
		Scale: start,
	})
	return e
}
