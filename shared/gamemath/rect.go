package gamemath

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vector is a signed per-frame delta.
type Vector struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in viewport pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAt builds a Rect from a top-left corner and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{Left: p.X, Top: p.Y, Right: p.X + s.W, Bottom: p.Y + s.H}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Overlaps reports whether a and b intersect. Rectangles that only share an
// edge count as overlapping: only a strict gap on some axis separates them.
func Overlaps(a, b Rect) bool {
	return !(a.Right < b.Left ||
		a.Left > b.Right ||
		a.Bottom < b.Top ||
		a.Top > b.Bottom)
}
