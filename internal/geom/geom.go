package geom

import "math"

// Point is a position in screen space, in pixels.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Mid returns the midpoint of p and q.
func Mid(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Rect is an axis-aligned rectangle, Min inclusive, Max exclusive.
type Rect struct {
	Min, Max Point
}

func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Point{x0, y0}, Max: Point{x1, y1}}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Diag returns the length of the rectangle's diagonal.
func (r Rect) Diag() float64 {
	return math.Hypot(r.W(), r.H())
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func LerpPt(a, b Point, t float64) Point {
	return Point{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOutCubic maps t in [0,1] to a smooth s-curve. Inputs outside the
// range are clamped.
func EaseInOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
