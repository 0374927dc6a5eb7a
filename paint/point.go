package paint

import "math"

// Point is a position or displacement in user space.
type Point struct {
	X, Y float64
}

// Pt builds a Point.
func Pt(x, y float64) Point { return Point{x, y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul scales p by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Normalize scales p to unit length. The zero vector stays zero.
func (p Point) Normalize() Point {
	if n := math.Hypot(p.X, p.Y); n != 0 {
		return p.Mul(1 / n)
	}
	return p
}

// Perp turns p a quarter turn.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Lerp moves from p toward q by fraction t.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}
