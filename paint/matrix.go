package paint

import "math"

// Matrix is a 2D affine map stored as the top two rows of a 3x3 matrix.
// A point (x, y) maps to (A*x + B*y + C, D*x + E*y + F).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the map that leaves every point in place.
func Identity() Matrix { return Matrix{A: 1, E: 1} }

// Translate returns a map that shifts points by (dx, dy).
func Translate(dx, dy float64) Matrix { return Matrix{A: 1, E: 1, C: dx, F: dy} }

// Scale returns a map that stretches points about the origin.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, E: sy} }

// Rotate returns a counterclockwise rotation by theta radians in a y-up
// frame, which is clockwise on a y-down canvas.
func Rotate(theta float64) Matrix {
	s, c := math.Sincos(theta)
	return Matrix{A: c, B: -s, D: s, E: c}
}

// Multiply composes m with n so that n is applied first.
func (m Matrix) Multiply(n Matrix) Matrix {
	var out Matrix
	out.A, out.B = m.A*n.A+m.B*n.D, m.A*n.B+m.B*n.E
	out.D, out.E = m.D*n.A+m.E*n.D, m.D*n.B+m.E*n.E
	out.C, out.F = m.TransformPoint(n.C, n.F)
	return out
}

// TransformPoint maps (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

func (m Matrix) apply(p Point) Point {
	x, y := m.TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool { return m == Identity() }

// ScaleFactor is the square root of the absolute determinant. Line widths
// and font sizes are multiplied by it when geometry moves to device space.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// Rect is an axis-aligned box with MinY at the top on a y-down canvas.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width is MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height is MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// bbox accumulates points into a Rect.
type bbox struct {
	r   Rect
	any bool
}

func (b *bbox) add(pts ...Point) {
	for _, p := range pts {
		if !b.any {
			b.r = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			b.any = true
			continue
		}
		b.r.MinX, b.r.MaxX = math.Min(b.r.MinX, p.X), math.Max(b.r.MaxX, p.X)
		b.r.MinY, b.r.MaxY = math.Min(b.r.MinY, p.Y), math.Max(b.r.MaxY, p.Y)
	}
}
