package paint

import "math"

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, approximating curves with line
// segments whose deviation from the curve stays below tolerance.
// Subpaths with fewer than two points are dropped.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}

	var (
		out []Polyline
		cur Polyline
	)
	flush := func() {
		if len(cur.Points) >= 2 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}
	last := func() Point {
		if len(cur.Points) == 0 {
			return Point{}
		}
		return cur.Points[len(cur.Points)-1]
	}

	for _, elem := range p.elems {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			cur.Points = append(cur.Points, e.Point)
		case LineTo:
			cur.Points = append(cur.Points, e.Point)
		case QuadTo:
			p0 := last()
			n := segments(p0.Distance(e.Control)+e.Control.Distance(e.Point), tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				a := p0.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				cur.Points = append(cur.Points, a.Lerp(b, t))
			}
		case CubicTo:
			p0 := last()
			hull := p0.Distance(e.Control1) + e.Control1.Distance(e.Control2) + e.Control2.Distance(e.Point)
			n := segments(hull, tolerance)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, cubicAt(p0, e.Control1, e.Control2, e.Point, float64(i)/float64(n)))
			}
		case Close:
			cur.Closed = true
			start := Point{}
			if len(cur.Points) > 0 {
				start = cur.Points[0]
			}
			flush()
			// A drawing command after Close continues from the subpath start.
			cur.Points = append(cur.Points, start)
		}
	}
	flush()
	return out
}

func segments(length, tolerance float64) int {
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	if n < 1 {
		return 1
	}
	if n > 256 {
		return 256
	}
	return n
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
