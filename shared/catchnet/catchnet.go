// Package catchnet implements the player's draggable net: drag tracking,
// facing direction and the per-move catch check against live butterflies.
package catchnet

import (
	"github.com/automoto/playmates/shared/gamemath"
)

// Net sizes by breakpoint. The net switches size at the breakpoint instead of
// scaling continuously.
const (
	Breakpoint = 768
	SmallSize  = 120
	LargeSize  = 200
)

// Orientation is the way the net sprite faces.
type Orientation int

const (
	Right Orientation = iota
	Left
)

func (o Orientation) String() string {
	if o == Left {
		return "left"
	}
	return "right"
}

// MotionHandle is the read-only view of a butterfly the net needs for a catch
// check. Handles whose entity is gone or not yet measured never collide.
type MotionHandle interface {
	Position() gamemath.Point
	Bounds() (gamemath.Size, bool)
	Live() bool
}

// Controller tracks the net under direct manipulation.
type Controller struct {
	Position    gamemath.Point
	Size        gamemath.Size
	Dragging    bool
	Orientation Orientation

	// OnCatch fires at most once per Move. Repeated catches across moves are
	// the caller's to suppress.
	OnCatch func()

	offset gamemath.Vector
}

// New creates a net sized for the viewport and centered in it.
func New(viewport gamemath.Size, onCatch func()) *Controller {
	c := &Controller{OnCatch: onCatch}
	c.Resize(viewport.W)
	c.Center(viewport)
	return c
}

// SizeFor returns the net dimensions for a viewport width.
func SizeFor(viewportWidth float64) gamemath.Size {
	if viewportWidth < Breakpoint {
		return gamemath.Size{W: SmallSize, H: SmallSize}
	}
	return gamemath.Size{W: LargeSize, H: LargeSize}
}

// Resize recomputes the net dimensions. The position is left alone.
func (c *Controller) Resize(viewportWidth float64) {
	c.Size = SizeFor(viewportWidth)
}

// Center moves the net to the middle of the viewport.
func (c *Controller) Center(viewport gamemath.Size) {
	c.Position = gamemath.Point{
		X: viewport.W/2 - c.Size.W/2,
		Y: viewport.H/2 - c.Size.H/2,
	}
}

// Rect returns the net's current hitbox.
func (c *Controller) Rect() gamemath.Rect {
	return gamemath.RectAt(c.Position, c.Size)
}

// Hit reports whether p is on the net, used to decide if a press grabs it.
func (c *Controller) Hit(p gamemath.Point) bool {
	return c.Rect().Contains(p)
}

// BeginDrag grabs the net at p. The grab offset is kept so the net does not jump
// under the pointer.
func (c *Controller) BeginDrag(p gamemath.Point) {
	c.Dragging = true
	c.offset = p.Sub(c.Position)
}

// Move follows the pointer while dragging and runs the catch check. It returns
// true when the catch callback fired.
func (c *Controller) Move(p gamemath.Point, handles []MotionHandle) bool {
	if !c.Dragging {
		return false
	}

	next := gamemath.Point{X: p.X - c.offset.X, Y: p.Y - c.offset.Y}
	if next.X < c.Position.X {
		c.Orientation = Left
	} else {
		c.Orientation = Right
	}
	c.Position = next

	if !c.Colliding(handles) {
		return false
	}
	if c.OnCatch != nil {
		c.OnCatch()
	}
	return true
}

// GrabOffset is where the net was grabbed, relative to its top-left corner.
// While dragging, the pointer sits at Position plus GrabOffset.
func (c *Controller) GrabOffset() gamemath.Vector {
	return c.offset
}

// EndDrag releases the net where it is.
func (c *Controller) EndDrag() {
	c.Dragging = false
}

// Colliding reports whether the net overlaps any live, measured handle.
func (c *Controller) Colliding(handles []MotionHandle) bool {
	net := c.Rect()
	for _, h := range handles {
		if Touches(net, h) {
			return true
		}
	}
	return false
}

// Touches reports whether rect overlaps the handle. Missing, dead or
// unmeasured handles never touch.
func Touches(rect gamemath.Rect, h MotionHandle) bool {
	if h == nil || !h.Live() {
		return false
	}
	size, ok := h.Bounds()
	if !ok {
		return false
	}
	return gamemath.Overlaps(rect, gamemath.RectAt(h.Position(), size))
}
