package components

import (
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData is the merged mouse/touch pointer. A touch, when present,
// takes over the pointer until it ends.
type PointerData struct {
	gesture.Pointer
	Touch   bool
	TouchID ebiten.TouchID
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer  PointerData
}

var Input = donburi.NewComponentType[InputData]()
