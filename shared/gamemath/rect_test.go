package gamemath

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 20, 10}, true},
		{"disjoint by one pixel", Rect{0, 0, 10, 10}, Rect{11, 0, 20, 10}, false},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 20, 20}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 60, 60}, true},
		{"above", Rect{0, 0, 10, 10}, Rect{0, 10.5, 10, 20}, false},
		{"left of", Rect{20, 0, 30, 10}, Rect{0, 0, 19.9, 10}, false},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 15, 15}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Fatalf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestRectAtAndCenter(t *testing.T) {
	r := RectAt(Point{X: 10, Y: 20}, Size{W: 100, H: 50})
	if r.Right != 110 || r.Bottom != 70 {
		t.Fatalf("unexpected rect %+v", r)
	}
	if c := r.Center(); c.X != 60 || c.Y != 45 {
		t.Fatalf("unexpected center %+v", c)
	}
	if !r.Contains(Point{X: 110, Y: 70}) {
		t.Fatalf("expected bottom-right corner to be contained")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Fatalf("got %v", got)
	}
	if got := Clamp(5, 0, -1); got != 0 {
		t.Fatalf("inverted range should clamp to lo, got %v", got)
	}
}
