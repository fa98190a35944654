package systems

import (
	"fmt"
	"log"

	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// Key bindings resolved from config key names
var keyBindings map[cfg.ActionID][]ebiten.Key

// ResolveBindings parses the configured key names. It must run after config
// overrides are applied and before the first UpdateInput.
func ResolveBindings() error {
	resolved := make(map[cfg.ActionID][]ebiten.Key, len(cfg.Input.Bindings))
	for actionID, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return fmt.Errorf("binding for action %d: %w", actionID, err)
			}
			resolved[actionID] = append(resolved[actionID], k)
		}
	}
	keyBindings = resolved
	return nil
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run before every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if keyBindings == nil {
		if err := ResolveBindings(); err != nil {
			log.Printf("Warning: Could not resolve key bindings: %v", err)
			keyBindings = map[cfg.ActionID][]ebiten.Key{}
		}
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	pollPointer(&input.Pointer)
}

// pollPointer merges touch and mouse into one pointer. The first touch owns
// the pointer until it lifts; otherwise the left mouse button drives it.
func pollPointer(p *components.PointerData) {
	p.BeginFrame()

	if !p.Touch {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) > 0 {
			p.Touch = true
			p.TouchID = touchIDs[0]
			x, y := ebiten.TouchPosition(p.TouchID)
			p.Press(gamemath.Point{X: float64(x), Y: float64(y)})
			return
		}
	}

	if p.Touch {
		if inpututil.IsTouchJustReleased(p.TouchID) {
			// Position is gone once the touch lifts; keep the last one.
			p.Touch = false
			p.Release()
			return
		}
		x, y := ebiten.TouchPosition(p.TouchID)
		p.MoveTo(gamemath.Point{X: float64(x), Y: float64(y)})
		return
	}

	x, y := ebiten.CursorPosition()
	pos := gamemath.Point{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.Press(pos)
	case p.Pressed && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		p.MoveTo(pos)
		p.Release()
	default:
		p.MoveTo(pos)
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Clicked reports a press and release inside r that no control on top
// claimed and that stayed within the click slop.
func Clicked(p *components.PointerData, r gamemath.Rect) bool {
	return p.Clicked(r, cfg.Input.ClickSlop)
}
