package paint

// PathElement is one drawing verb of a Path: MoveTo, LineTo, QuadTo,
// CubicTo or Close.
type PathElement interface {
	// points lists the element's coordinates in drawing order, control
	// points first.
	points() []Point
	// mapped returns a copy with every coordinate passed through m.
	mapped(m Matrix) PathElement
}

// MoveTo starts a new subpath at Point.
type MoveTo struct{ Point Point }

// LineTo draws a straight segment to Point.
type LineTo struct{ Point Point }

// QuadTo draws a quadratic Bezier segment.
type QuadTo struct{ Control, Point Point }

// CubicTo draws a cubic Bezier segment.
type CubicTo struct{ Control1, Control2, Point Point }

// Close joins the pen back to the start of the subpath.
type Close struct{}

func (e MoveTo) points() []Point  { return []Point{e.Point} }
func (e LineTo) points() []Point  { return []Point{e.Point} }
func (e QuadTo) points() []Point  { return []Point{e.Control, e.Point} }
func (e CubicTo) points() []Point { return []Point{e.Control1, e.Control2, e.Point} }
func (Close) points() []Point     { return nil }

func (e MoveTo) mapped(m Matrix) PathElement { return MoveTo{m.apply(e.Point)} }
func (e LineTo) mapped(m Matrix) PathElement { return LineTo{m.apply(e.Point)} }
func (e QuadTo) mapped(m Matrix) PathElement { return QuadTo{m.apply(e.Control), m.apply(e.Point)} }
func (e CubicTo) mapped(m Matrix) PathElement {
	return CubicTo{m.apply(e.Control1), m.apply(e.Control2), m.apply(e.Point)}
}
func (c Close) mapped(Matrix) PathElement { return c }

// Path is a sequence of subpaths in user coordinates.
type Path struct {
	elems    []PathElement
	subStart Point
	pen      Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elems: make([]PathElement, 0, 16)}
}

func (p *Path) push(e PathElement, pen Point) {
	p.elems = append(p.elems, e)
	p.pen = pen
}

// MoveTo begins a subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.subStart = Pt(x, y)
	p.push(MoveTo{p.subStart}, p.subStart)
}

// LineTo adds a segment to (x, y). On an empty path it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elems) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.push(LineTo{Pt(x, y)}, Pt(x, y))
}

// QuadraticTo adds a quadratic curve through control (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.push(QuadTo{Pt(cx, cy), Pt(x, y)}, Pt(x, y))
}

// CubicTo adds a cubic curve with two control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.push(CubicTo{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)}, Pt(x, y))
}

// Close ends the current subpath.
func (p *Path) Close() {
	p.push(Close{}, p.subStart)
}

// Elements exposes the verbs. Callers must not modify the slice.
func (p *Path) Elements() []PathElement { return p.elems }

// IsEmpty reports whether p is nil or has no verbs.
func (p *Path) IsEmpty() bool { return p == nil || len(p.elems) == 0 }

// CurrentPoint is where the next segment starts.
func (p *Path) CurrentPoint() Point { return p.pen }

// Transform returns a new path with m applied; p is left untouched.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elems: make([]PathElement, len(p.elems))}
	for i, e := range p.elems {
		out.elems[i] = e.mapped(m)
	}
	out.subStart, out.pen = m.apply(p.subStart), m.apply(p.pen)
	return out
}

// Bounds is the box around every coordinate including control points, so
// it can be loose around curves. An empty path yields the zero Rect.
func (p *Path) Bounds() Rect {
	var b bbox
	for _, e := range p.elems {
		b.add(e.points()...)
	}
	return b.r
}

// Rectangle appends a closed axis-aligned rectangle.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	for _, c := range [...]Point{{x + w, y}, {x + w, y + h}, {x, y + h}} {
		p.LineTo(c.X, c.Y)
	}
	p.Close()
}

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498307936

// Circle appends a closed circle made of four cubic arcs.
func (p *Path) Circle(cx, cy, r float64) {
	k := r * kappa
	p.MoveTo(cx+r, cy)
	// Quadrants in order: +x to +y, +y to -x, -x to -y, -y to +x.
	dirs := [...][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	for i := 0; i < 4; i++ {
		a, b := dirs[i], dirs[i+1]
		p.CubicTo(
			cx+a[0]*r+b[0]*k, cy+a[1]*r+b[1]*k,
			cx+b[0]*r+a[0]*k, cy+b[1]*r+a[1]*k,
			cx+b[0]*r, cy+b[1]*r,
		)
	}
	p.Close()
}

// Clone returns an independent copy.
func (p *Path) Clone() *Path {
	c := *p
	c.elems = append([]PathElement(nil), p.elems...)
	return &c
}
