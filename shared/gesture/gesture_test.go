package gesture

import (
	"testing"

	"github.com/automoto/playmates/shared/gamemath"
)

const slop = 6

var cage = gamemath.RectAt(gamemath.Point{X: 1196, Y: 20}, gamemath.Size{W: 64, H: 64})

func pt(x, y float64) gamemath.Point { return gamemath.Point{X: x, Y: y} }

// tap presses and releases at pos over two frames.
func tap(p *Pointer, pos gamemath.Point, claim bool) {
	p.BeginFrame()
	p.Press(pos)
	if claim {
		p.Claim()
	}
	p.BeginFrame()
	p.MoveTo(pos)
	p.Release()
}

func TestTapIsClick(t *testing.T) {
	var p Pointer
	tap(&p, pt(1220, 40), false)
	if !p.Clicked(cage, slop) {
		t.Fatal("unclaimed tap inside the cage should click it")
	}
}

func TestClaimedTapDoesNotClickUnderneath(t *testing.T) {
	// The net sits over the cage and grabs the press.
	var p Pointer
	tap(&p, pt(1220, 40), true)
	if !p.Claimed() {
		t.Fatal("press should be claimed")
	}
	if p.Clicked(cage, slop) {
		t.Fatal("a press taken by the net must not open the cage")
	}
}

func TestNextPressDropsClaim(t *testing.T) {
	var p Pointer
	tap(&p, pt(1220, 40), true)
	tap(&p, pt(1220, 40), false)
	if !p.Clicked(cage, slop) {
		t.Fatal("claim leaked into the next press")
	}
}

func TestClaimOnlyOnce(t *testing.T) {
	var p Pointer
	p.Press(pt(10, 10))
	if !p.Claim() {
		t.Fatal("first claim should succeed")
	}
	if p.Claim() {
		t.Fatal("second claim should fail")
	}
}

func TestClaimWithoutPress(t *testing.T) {
	var p Pointer
	if p.Claim() {
		t.Fatal("claim with no press should fail")
	}
}

func TestClickedRules(t *testing.T) {
	tests := []struct {
		name     string
		from, to gamemath.Point
		want     bool
	}{
		{"still", pt(1220, 40), pt(1220, 40), true},
		{"within slop", pt(1220, 40), pt(1224, 44), true},
		{"dragged", pt(1220, 40), pt(1240, 40), false},
		{"started outside", pt(1000, 40), pt(1220, 40), false},
		{"ended outside", pt(1258, 40), pt(1262, 40), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Pointer
			p.Press(tt.from)
			p.BeginFrame()
			p.MoveTo(tt.to)
			p.Release()
			if got := p.Clicked(cage, slop); got != tt.want {
				t.Errorf("Clicked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClickedOnlyOnReleaseFrame(t *testing.T) {
	var p Pointer
	tap(&p, pt(1220, 40), false)
	p.BeginFrame()
	if p.Clicked(cage, slop) {
		t.Fatal("click reported again on the following frame")
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	var p Pointer
	p.Release()
	if p.JustReleased {
		t.Fatal("release without a press should be ignored")
	}
}
