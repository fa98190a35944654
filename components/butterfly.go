package components

import (
	"github.com/automoto/playmates/shared/flight"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ButterflyData owns one butterfly's simulation state.
type ButterflyData struct {
	Body      flight.Body
	Bounds    flight.Bounds
	Transform flight.Transform
	Catchable bool
	// Key is the prey slot key the butterfly was spawned under; 0 for released ones.
	Key uint64
}

var Butterfly = donburi.NewComponentType[ButterflyData]()

// MotionHandle adapts a butterfly entry to the net's collision view. It reads
// through the entry on every call, so a removed entity reports not live.
type MotionHandle struct {
	Entry *donburi.Entry
}

func (h MotionHandle) data() *ButterflyData {
	if h.Entry == nil || !h.Entry.Valid() {
		return nil
	}
	return Butterfly.Get(h.Entry)
}

func (h MotionHandle) Position() gamemath.Point {
	if b := h.data(); b != nil {
		return b.Body.Position
	}
	return gamemath.Point{}
}

func (h MotionHandle) Bounds() (gamemath.Size, bool) {
	if b := h.data(); b != nil {
		return b.Bounds.Size, b.Bounds.Known
	}
	return gamemath.Size{}, false
}

func (h MotionHandle) Live() bool {
	b := h.data()
	return b != nil && b.Body.Alive()
}
