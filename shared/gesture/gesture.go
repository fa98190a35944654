// Package gesture follows a single pointer (mouse or touch) from press to
// release and decides which on-screen control a press belongs to.
package gesture

import "github.com/automoto/playmates/shared/gamemath"

// Pointer is the per-frame state of one press. Controls drawn on top claim
// a press when it starts; a claimed press never counts as a click on
// anything underneath.
type Pointer struct {
	Position     gamemath.Point
	Origin       gamemath.Point // where the current press started
	Pressed      bool
	JustPressed  bool
	JustReleased bool

	claimed bool
}

// BeginFrame clears the one-frame edges. Call it before feeding this
// frame's events.
func (p *Pointer) BeginFrame() {
	p.JustPressed = false
	p.JustReleased = false
}

// Press starts a new press at pos. The previous press's claim is dropped.
func (p *Pointer) Press(pos gamemath.Point) {
	p.Position = pos
	p.Origin = pos
	p.Pressed = true
	p.JustPressed = true
	p.claimed = false
}

// MoveTo updates the position without changing the button state.
func (p *Pointer) MoveTo(pos gamemath.Point) {
	p.Position = pos
}

// Release ends the press at the current position.
func (p *Pointer) Release() {
	if !p.Pressed {
		return
	}
	p.Pressed = false
	p.JustReleased = true
}

// Claim marks the current press as taken. It returns false when another
// control already took it or no press is active.
func (p *Pointer) Claim() bool {
	if p.claimed || !(p.Pressed || p.JustReleased) {
		return false
	}
	p.claimed = true
	return true
}

// Claimed reports whether a control took the current press.
func (p *Pointer) Claimed() bool {
	return p.claimed
}

// Clicked reports an unclaimed press that started and ended inside r
// without moving further than slop.
func (p *Pointer) Clicked(r gamemath.Rect, slop float64) bool {
	if !p.JustReleased || p.claimed {
		return false
	}
	if !r.Contains(p.Origin) || !r.Contains(p.Position) {
		return false
	}
	d := p.Position.Sub(p.Origin)
	return d.X*d.X+d.Y*d.Y <= slop*slop
}
