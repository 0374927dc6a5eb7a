package ggplot

import "math"

// decorations is the space taken by an axes' ticks, labels and title
// outside its rectangle, in points.
type decorations struct {
	left, right, top, bottom float64
}

// decorations measures the extents of everything drawAxes places outside r.
func (a *Axes) decorations(r Rect) decorations {
	src := a.fig.font
	tick := src.Face(fontSize).Metrics()
	tickH := tick.Ascent + tick.Descent

	xlo, xhi := a.XLim()
	ylo, yhi := a.YLim()
	xticks := a.xticker.Ticks(xlo, xhi)
	yticks := a.yticker.Ticks(ylo, yhi)

	var d decorations

	d.bottom = tickLength
	if len(xticks) > 0 {
		d.bottom += tickPad + tickH
	}
	if a.xlabel != "" {
		d.bottom += labelPad + tickH
	}

	maxW := 0.0
	for _, t := range yticks {
		maxW = math.Max(maxW, src.Face(fontSize).Advance(t.Label))
	}
	d.left = tickLength
	if len(yticks) > 0 {
		d.left += tickPad + maxW
	}
	if a.ylabel != "" {
		d.left += labelPad + tickH
	}

	// Tick labels centered on ticks near the axes ends stick out.
	face := src.Face(fontSize)
	for _, t := range xticks {
		half := face.Advance(t.Label) / 2
		x := xToDevice(t.Value, xlo, xhi, r)
		d.right = math.Max(d.right, x+half-r.MaxX)
		d.left = math.Max(d.left, r.MinX-(x-half))
	}
	for _, t := range yticks {
		y := yToDevice(t.Value, ylo, yhi, r)
		d.top = math.Max(d.top, r.MinY-(y-tickH/2))
		d.bottom = math.Max(d.bottom, y+tickH/2-r.MaxY)
	}

	if a.title != "" {
		m := src.Face(titleSize).Metrics()
		d.top = math.Max(d.top, titlePad+m.Ascent+m.Descent)
	}
	return d
}

// TightLayout adjusts the subplot parameters so that tick labels, axis
// labels and titles fit inside the figure and do not overlap between
// neighboring subplots.
//
// A figure without axes is left alone. When the decorations cannot fit the
// parameters are left unchanged and a warning is logged.
func (f *Figure) TightLayout(opts ...TightOption) error {
	if len(f.axes) == 0 {
		return nil
	}
	o := defaultTightOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hSet {
		o.hPad = o.pad
	}
	if !o.wSet {
		o.wPad = o.pad
	}
	pad, hPad, wPad := o.pad*fontSize, o.hPad*fontSize, o.wPad*fontSize

	w, h := f.widthPt(), f.heightPt()
	p := f.params

	var (
		left, right, top, bottom float64
		innerL, innerR           float64
		innerT, innerB           float64
		rows, cols               = 1, 1
	)
	for _, ax := range f.axes {
		d := ax.decorations(f.axesRect(ax, p))
		row := (ax.index - 1) / ax.cols
		col := (ax.index - 1) % ax.cols
		rows, cols = max(rows, ax.rows), max(cols, ax.cols)

		if col == 0 {
			left = math.Max(left, d.left)
		} else {
			innerL = math.Max(innerL, d.left)
		}
		if col == ax.cols-1 {
			right = math.Max(right, d.right)
		} else {
			innerR = math.Max(innerR, d.right)
		}
		if row == 0 {
			top = math.Max(top, d.top)
		} else {
			innerT = math.Max(innerT, d.top)
		}
		if row == ax.rows-1 {
			bottom = math.Max(bottom, d.bottom)
		} else {
			innerB = math.Max(innerB, d.bottom)
		}
	}

	topMargin := top + pad
	if f.suptitle != "" {
		m := f.font.Face(suptitleSize).Metrics()
		topMargin += (1-suptitleY)*h + m.Ascent + m.Descent
	}

	next := SubplotParams{
		Left:   (left + pad) / w,
		Right:  1 - (right+pad)/w,
		Bottom: (bottom + pad) / h,
		Top:    1 - topMargin/h,
		WSpace: p.WSpace,
		HSpace: p.HSpace,
	}
	if next.Left >= next.Right || next.Bottom >= next.Top {
		Logger().Warn("ggplot: tight layout not applied, decorations do not fit",
			"left", next.Left, "right", next.Right, "bottom", next.Bottom, "top", next.Top)
		return nil
	}

	if cols > 1 {
		gap := innerL + innerR + wPad
		axW := ((next.Right-next.Left)*w - gap*float64(cols-1)) / float64(cols)
		if axW <= 0 {
			Logger().Warn("ggplot: tight layout not applied, columns do not fit", "gap", gap)
			return nil
		}
		next.WSpace = gap / axW
	}
	if rows > 1 {
		gap := innerT + innerB + hPad
		axH := ((next.Top-next.Bottom)*h - gap*float64(rows-1)) / float64(rows)
		if axH <= 0 {
			Logger().Warn("ggplot: tight layout not applied, rows do not fit", "gap", gap)
			return nil
		}
		next.HSpace = gap / axH
	}

	f.params = next
	Logger().Debug("ggplot: tight layout",
		"left", next.Left, "right", next.Right, "bottom", next.Bottom, "top", next.Top,
		"wspace", next.WSpace, "hspace", next.HSpace)
	return nil
}

// axisFraction maps v to its position in [lo, hi] as a 0..1 fraction.
// Halving first keeps the differences finite for limits near ±MaxFloat64.
func axisFraction(v, lo, hi float64) float64 {
	return (v/2 - lo/2) / (hi/2 - lo/2)
}

func xToDevice(v, lo, hi float64, r Rect) float64 {
	return r.MinX + axisFraction(v, lo, hi)*r.Width()
}

func yToDevice(v, lo, hi float64, r Rect) float64 {
	return r.MaxY - axisFraction(v, lo, hi)*r.Height()
}
