package systems

import (
	"time"

	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/flight"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/tags"
	"github.com/yohamta/donburi/ecs"
)

var (
	viewport = gamemath.Size{W: float64(cfg.C.Width), H: float64(cfg.C.Height)}
	// last viewport the scene reacted to
	appliedViewport gamemath.Size

	rng flight.Rand = flight.NewRand(uint64(time.Now().UnixNano()))
)

// SetViewport records the window's logical size. Called from Layout.
func SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	viewport = gamemath.Size{W: float64(width), H: float64(height)}
}

// Viewport returns the current logical screen size.
func Viewport() gamemath.Size {
	return viewport
}

// SeedRand makes spawns reproducible.
func SeedRand(seed uint64) {
	rng = flight.NewRand(seed)
}

// UpdateViewport reacts to window resizes: the net picks its breakpoint size
// without recentering and the cage follows the right edge.
func UpdateViewport(e *ecs.ECS) {
	if viewport == appliedViewport {
		return
	}
	appliedViewport = viewport

	ResizeNet(e)

	if entry, ok := tags.Cage.First(e.World); ok {
		p := factory.CagePosition(viewport)
		obj := components.Object.Get(entry)
		obj.X, obj.Y = p.X, p.Y
		obj.Update()
	}
}
