package catchnet

import (
	"testing"

	"github.com/automoto/playmates/shared/gamemath"
)

type fakeHandle struct {
	pos   gamemath.Point
	size  gamemath.Size
	known bool
	dead  bool
}

func (f *fakeHandle) Position() gamemath.Point { return f.pos }
func (f *fakeHandle) Bounds() (gamemath.Size, bool) { return f.size, f.known }
func (f *fakeHandle) Live() bool { return !f.dead }

func butterflyAt(x, y float64) *fakeHandle {
	return &fakeHandle{pos: gamemath.Point{X: x, Y: y}, size: gamemath.Size{W: 100, H: 80}, known: true}
}

var desktop = gamemath.Size{W: 1280, H: 720}

func TestNewCentersNet(t *testing.T) {
	c := New(desktop, nil)
	if c.Size.W != LargeSize || c.Size.H != LargeSize {
		t.Fatalf("expected large net, got %+v", c.Size)
	}
	if c.Position.X != 540 || c.Position.Y != 260 {
		t.Fatalf("expected centered net, got %+v", c.Position)
	}
}

func TestResizeUsesBreakpointWithoutRecentering(t *testing.T) {
	c := New(desktop, nil)
	c.Position = gamemath.Point{X: 10, Y: 20}

	c.Resize(767)
	if c.Size.W != SmallSize {
		t.Fatalf("expected small net below breakpoint, got %+v", c.Size)
	}
	c.Resize(768)
	if c.Size.W != LargeSize {
		t.Fatalf("expected large net at breakpoint, got %+v", c.Size)
	}
	if c.Position.X != 10 || c.Position.Y != 20 {
		t.Fatalf("resize must not move the net, got %+v", c.Position)
	}
}

func TestDragKeepsGrabOffset(t *testing.T) {
	c := New(desktop, nil)
	c.Position = gamemath.Point{X: 100, Y: 100}

	c.BeginDrag(gamemath.Point{X: 130, Y: 150})
	if off := c.GrabOffset(); off.X != 30 || off.Y != 50 {
		t.Fatalf("grab offset = %+v, want (30, 50)", off)
	}
	c.Move(gamemath.Point{X: 140, Y: 160}, nil)

	if c.Position.X != 110 || c.Position.Y != 110 {
		t.Fatalf("expected net at (110, 110), got %+v", c.Position)
	}
}

func TestOrientationFollowsMovementSign(t *testing.T) {
	c := New(desktop, nil)
	c.Position = gamemath.Point{X: 100, Y: 100}
	c.BeginDrag(gamemath.Point{X: 100, Y: 100})

	steps := []struct {
		x    float64
		want Orientation
	}{
		{90, Left},
		{90, Right}, // no horizontal change counts as right
		{95, Right},
		{94.5, Left},
	}
	for i, s := range steps {
		c.Move(gamemath.Point{X: s.x, Y: 100}, nil)
		if c.Orientation != s.want {
			t.Fatalf("step %d: expected %v, got %v", i, s.want, c.Orientation)
		}
	}
}

func TestMoveIgnoredWhenNotDragging(t *testing.T) {
	calls := 0
	c := New(desktop, func() { calls++ })
	start := c.Position

	caught := c.Move(gamemath.Point{X: 0, Y: 0}, []MotionHandle{butterflyAt(0, 0)})

	if caught || calls != 0 {
		t.Fatalf("expected no catch while idle")
	}
	if c.Position != start {
		t.Fatalf("net moved while idle: %+v", c.Position)
	}
}

func TestMoveCatchesOncePerEvent(t *testing.T) {
	calls := 0
	c := New(desktop, func() { calls++ })
	c.Position = gamemath.Point{X: 0, Y: 0}
	c.BeginDrag(gamemath.Point{X: 0, Y: 0})

	handles := []MotionHandle{butterflyAt(300, 300), butterflyAt(320, 310)}
	if !c.Move(gamemath.Point{X: 250, Y: 250}, handles) {
		t.Fatalf("expected a catch")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one catch callback, got %d", calls)
	}

	// The controller does not debounce: the next overlapping move fires again.
	c.Move(gamemath.Point{X: 251, Y: 250}, handles)
	if calls != 2 {
		t.Fatalf("expected a second callback on the next move, got %d", calls)
	}
}

func TestEdgeTouchCounts(t *testing.T) {
	c := New(desktop, nil)
	c.Position = gamemath.Point{X: 0, Y: 0}

	// Net spans 0..200; a butterfly starting exactly at x=200 touches it.
	if !c.Colliding([]MotionHandle{butterflyAt(200, 0)}) {
		t.Fatalf("expected edge contact to collide")
	}
	if c.Colliding([]MotionHandle{butterflyAt(200.5, 0)}) {
		t.Fatalf("expected a gap to separate")
	}
}

func TestUnavailableHandlesNeverCollide(t *testing.T) {
	c := New(desktop, nil)
	c.Position = gamemath.Point{X: 0, Y: 0}

	unmeasured := butterflyAt(10, 10)
	unmeasured.known = false
	dead := butterflyAt(10, 10)
	dead.dead = true

	if c.Colliding([]MotionHandle{nil, unmeasured, dead}) {
		t.Fatalf("unavailable handles must be treated as no collision")
	}
}

func TestEndDragKeepsPosition(t *testing.T) {
	c := New(desktop, nil)
	c.BeginDrag(c.Position)
	c.Move(gamemath.Point{X: 700, Y: 400}, nil)
	at := c.Position

	c.EndDrag()
	c.Move(gamemath.Point{X: 0, Y: 0}, nil)

	if c.Dragging || c.Position != at {
		t.Fatalf("expected net to stay at %+v, got %+v", at, c.Position)
	}
}
