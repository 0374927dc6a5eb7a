package raster

import (
	"math"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/recording"
)

// strokePolygons converts flattened polylines into closed polygons whose
// union is the stroke outline. Every polygon is emitted with the same
// winding so overlapping pieces accumulate instead of cancelling.
func strokePolygons(lines []paint.Polyline, st recording.Stroke) [][]paint.Point {
	hw := st.Width / 2
	if !(hw > 0) {
		return nil
	}
	if len(st.DashPattern) > 0 {
		lines = dashPolylines(lines, st.DashPattern, st.DashOffset)
	}

	var polys [][]paint.Point
	emit := func(poly []paint.Point) {
		if area := signedArea(poly); area != 0 {
			if area < 0 {
				reverse(poly)
			}
			polys = append(polys, poly)
		}
	}

	for _, line := range lines {
		pts := dedupe(line.Points)
		if line.Closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			continue
		}
		closed := line.Closed && len(pts) > 2

		n := len(pts) - 1
		if closed {
			n = len(pts)
		}
		for i := 0; i < n; i++ {
			a, c := pts[i], pts[(i+1)%len(pts)]
			dir := c.Sub(a).Normalize()
			if !closed && st.Cap == recording.LineCapSquare {
				if i == 0 {
					a = a.Sub(dir.Mul(hw))
				}
				if i == n-1 {
					c = c.Add(dir.Mul(hw))
				}
			}
			off := dir.Perp().Mul(hw)
			emit([]paint.Point{a.Add(off), c.Add(off), c.Sub(off), a.Sub(off)})
		}

		// Joins at interior vertices, or at every vertex of a closed line.
		first, last := 1, len(pts)-1
		if closed {
			first, last = 0, len(pts)
		}
		for i := first; i < last; i++ {
			prev := pts[(i-1+len(pts))%len(pts)]
			v := pts[i]
			next := pts[(i+1)%len(pts)]
			for _, poly := range joinPolygons(prev, v, next, hw, st) {
				emit(poly)
			}
		}

		if !closed && st.Cap == recording.LineCapRound {
			emit(circlePolygon(pts[0], hw))
			emit(circlePolygon(pts[len(pts)-1], hw))
		}
	}
	return polys
}

// joinPolygons fills the wedge between two consecutive segment rectangles.
func joinPolygons(prev, v, next paint.Point, hw float64, st recording.Stroke) [][]paint.Point {
	dA := v.Sub(prev).Normalize()
	dB := next.Sub(v).Normalize()
	cross := dA.X*dB.Y - dA.Y*dB.X
	if cross == 0 && dA.X*dB.X+dA.Y*dB.Y > 0 {
		return nil
	}

	if st.Join == recording.LineJoinRound {
		return [][]paint.Point{circlePolygon(v, hw)}
	}

	oA := dA.Perp().Mul(hw)
	oB := dB.Perp().Mul(hw)
	if cross > 0 {
		oA, oB = oA.Mul(-1), oB.Mul(-1)
	}
	polys := [][]paint.Point{{v, v.Add(oA), v.Add(oB)}}

	if st.Join == recording.LineJoinMiter {
		cosHalf := math.Sqrt((1 + dA.X*dB.X + dA.Y*dB.Y) / 2)
		limit := st.MiterLimit
		if limit <= 0 {
			limit = 4
		}
		if cosHalf > 0 && 1/cosHalf <= limit {
			bis := oA.Add(oB).Normalize()
			tip := v.Add(bis.Mul(hw / cosHalf))
			polys = append(polys, []paint.Point{v, v.Add(oA), tip, v.Add(oB)})
		}
	}
	return polys
}

// circlePolygon approximates a circle with enough vertices to keep the
// chord error under a tenth of a pixel.
func circlePolygon(c paint.Point, r float64) []paint.Point {
	n := int(math.Ceil(math.Pi / math.Acos(math.Max(1-flattenTolerance/r, -1))))
	n = max(8, min(n, 128))
	poly := make([]paint.Point, n)
	for i := range poly {
		theta := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = paint.Pt(c.X+r*math.Cos(theta), c.Y+r*math.Sin(theta))
	}
	return poly
}

// dashPolylines splits lines into the "on" intervals of pattern.
// Odd-length patterns repeat twice, as in SVG.
func dashPolylines(lines []paint.Polyline, pattern []float64, offset float64) []paint.Polyline {
	total := 0.0
	for _, d := range pattern {
		if d < 0 {
			return lines
		}
		total += d
	}
	if !(total > 0) {
		return lines
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
		total *= 2
	}

	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}

	var out []paint.Polyline
	for _, line := range lines {
		pts := line.Points
		if line.Closed && len(pts) > 1 {
			pts = append(append([]paint.Point(nil), pts...), pts[0])
		}
		if len(pts) < 2 {
			continue
		}

		idx, on, rem := 0, true, offset
		for rem >= pattern[idx] {
			rem -= pattern[idx]
			idx = (idx + 1) % len(pattern)
			on = !on
		}
		rem = pattern[idx] - rem

		var cur []paint.Point
		if on {
			cur = []paint.Point{pts[0]}
		}
		for i := 0; i+1 < len(pts); i++ {
			a, c := pts[i], pts[i+1]
			segLen := a.Distance(c)
			pos := 0.0
			for segLen-pos > rem {
				pos += rem
				p := a.Lerp(c, pos/segLen)
				if on {
					cur = append(cur, p)
					if len(cur) > 1 {
						out = append(out, paint.Polyline{Points: cur})
					}
					cur = nil
				} else {
					cur = []paint.Point{p}
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				rem = pattern[idx]
			}
			rem -= segLen - pos
			if on {
				cur = append(cur, c)
			}
		}
		if on && len(cur) > 1 {
			out = append(out, paint.Polyline{Points: cur})
		}
	}
	return out
}

func dedupe(pts []paint.Point) []paint.Point {
	out := make([]paint.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func signedArea(poly []paint.Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func reverse(poly []paint.Point) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}
