package ggplot

import (
	"fmt"
	"math"
)

// Axes is a single plot area with its own data limits, ticks and labels.
type Axes struct {
	fig               *Figure
	rows, cols, index int

	title, xlabel, ylabel string

	series     []series
	colorIndex int

	xlim, ylim *[2]float64

	xticker, yticker Ticker

	grid   bool
	legend bool
}

func newAxes(fig *Figure, rows, cols, index int) *Axes {
	return &Axes{
		fig:     fig,
		rows:    rows,
		cols:    cols,
		index:   index,
		xticker: DefaultTicker{},
		yticker: DefaultTicker{},
	}
}

// Figure returns the figure the axes belongs to.
func (a *Axes) Figure() *Figure { return a.fig }

// Position returns the subplot grid and the 1-based index of the axes.
func (a *Axes) Position() (rows, cols, index int) { return a.rows, a.cols, a.index }

// SetTitle sets the title drawn above the axes.
func (a *Axes) SetTitle(s string) { a.title = s }

// Title returns the axes title.
func (a *Axes) Title() string { return a.title }

// SetXLabel sets the x axis label.
func (a *Axes) SetXLabel(s string) { a.xlabel = s }

// XLabel returns the x axis label.
func (a *Axes) XLabel() string { return a.xlabel }

// SetYLabel sets the y axis label.
func (a *Axes) SetYLabel(s string) { a.ylabel = s }

// YLabel returns the y axis label.
func (a *Axes) YLabel() string { return a.ylabel }

// Grid toggles the major grid lines.
func (a *Axes) Grid(on bool) { a.grid = on }

// Legend toggles the legend. Series without a label are left out of it.
func (a *Axes) Legend(on bool) { a.legend = on }

// SetXTicker replaces the x axis ticker; nil restores DefaultTicker.
func (a *Axes) SetXTicker(t Ticker) {
	if t == nil {
		t = DefaultTicker{}
	}
	a.xticker = t
}

// SetYTicker replaces the y axis ticker; nil restores DefaultTicker.
func (a *Axes) SetYTicker(t Ticker) {
	if t == nil {
		t = DefaultTicker{}
	}
	a.yticker = t
}

// Plot adds a line through the points (xs[i], ys[i]). Non-finite points
// break the line.
func (a *Axes) Plot(xs, ys []float64, opts ...SeriesOption) (*Line, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	style := seriesStyle{lineWidth: lineWidth, markerSize: markerSize}
	a.applyStyle(&style, opts)
	l := &Line{xs: clone(xs), ys: clone(ys), style: style}
	a.series = append(a.series, l)
	return l, nil
}

// Scatter adds unconnected markers at the points (xs[i], ys[i]).
func (a *Axes) Scatter(xs, ys []float64, opts ...SeriesOption) (*Line, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	style := seriesStyle{lineWidth: lineWidth, markerSize: markerSize, marker: MarkerCircle, noLine: true}
	a.applyStyle(&style, opts)
	l := &Line{xs: clone(xs), ys: clone(ys), style: style}
	a.series = append(a.series, l)
	return l, nil
}

// Bar adds bars centered on xs rising from zero to heights.
func (a *Axes) Bar(xs, heights []float64, opts ...SeriesOption) (*Bars, error) {
	if len(xs) != len(heights) {
		return nil, fmt.Errorf("%w: %d x values, %d heights", ErrLengthMismatch, len(xs), len(heights))
	}
	style := seriesStyle{barWidth: barWidth}
	a.applyStyle(&style, opts)
	b := &Bars{xs: clone(xs), heights: clone(heights), style: style}
	a.series = append(a.series, b)
	return b, nil
}

// applyStyle applies opts and takes the next cycle color unless one was
// given explicitly.
func (a *Axes) applyStyle(s *seriesStyle, opts []SeriesOption) {
	for _, opt := range opts {
		opt(s)
	}
	if !s.colorSet {
		s.color = ColorCycle(a.colorIndex)
		a.colorIndex++
	}
}

// SetXLim fixes the x limits. lo > hi inverts the axis.
func (a *Axes) SetXLim(lo, hi float64) error {
	if err := checkLimits(lo, hi); err != nil {
		return err
	}
	a.xlim = &[2]float64{lo, hi}
	return nil
}

// SetYLim fixes the y limits. lo > hi inverts the axis.
func (a *Axes) SetYLim(lo, hi float64) error {
	if err := checkLimits(lo, hi); err != nil {
		return err
	}
	a.ylim = &[2]float64{lo, hi}
	return nil
}

// AutoScale drops limits set with SetXLim and SetYLim.
func (a *Axes) AutoScale() {
	a.xlim, a.ylim = nil, nil
}

// XLim returns the x view limits: the explicit limits when set, otherwise
// the data range with 5% margins.
func (a *Axes) XLim() (lo, hi float64) {
	if a.xlim != nil {
		return a.xlim[0], a.xlim[1]
	}
	x0, x1, _, _, ok := a.dataLimits()
	return autoLimits(x0, x1, ok, false)
}

// YLim returns the y view limits: the explicit limits when set, otherwise
// the data range with 5% margins. Bars keep their zero baseline on the
// axis edge.
func (a *Axes) YLim() (lo, hi float64) {
	if a.ylim != nil {
		return a.ylim[0], a.ylim[1]
	}
	_, _, y0, y1, ok := a.dataLimits()
	return autoLimits(y0, y1, ok, a.hasBars())
}

func (a *Axes) hasBars() bool {
	for _, s := range a.series {
		if _, ok := s.(*Bars); ok {
			return true
		}
	}
	return false
}

func (a *Axes) dataLimits() (x0, x1, y0, y1 float64, ok bool) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, s := range a.series {
		sx0, sx1, sy0, sy1, sok := s.extent()
		if !sok {
			continue
		}
		x0, x1 = math.Min(x0, sx0), math.Max(x1, sx1)
		y0, y1 = math.Min(y0, sy0), math.Max(y1, sy1)
		ok = true
	}
	return x0, x1, y0, y1, ok
}

// autoLimits pads [lo, hi] by the automatic margin. A zero-width range is
// first widened by 5% of its value; ranges that stay empty or sit below
// tinyMagnitude become ±autoMargin around their middle. With sticky zero, a
// limit sitting exactly on zero is not padded. Results are always finite.
func autoLimits(lo, hi float64, ok, stickyZero bool) (float64, float64) {
	if !ok {
		return 0, 1
	}
	mag := math.Max(math.Abs(lo), math.Abs(hi))
	if hi-lo <= 1e-12*mag {
		lo = clampFinite(lo - autoMargin*math.Abs(lo))
		hi = clampFinite(hi + autoMargin*math.Abs(hi))
		if !(hi-lo > 0) || mag < tinyMagnitude {
			mid := lo/2 + hi/2
			lo, hi = mid-autoMargin, mid+autoMargin
		}
	}
	// Scaling each end first keeps d finite when hi-lo overflows.
	d := hi*autoMargin - lo*autoMargin
	if !(stickyZero && lo == 0) {
		lo = clampFinite(lo - d)
	}
	if !(stickyZero && hi == 0) {
		hi = clampFinite(hi + d)
	}
	return lo, hi
}

func clampFinite(v float64) float64 {
	return math.Max(-math.MaxFloat64, math.Min(v, math.MaxFloat64))
}

func checkLimits(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo/2 == hi/2 {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidLimits, lo, hi)
	}
	return nil
}

func (l *Line) extent() (x0, x1, y0, y1 float64, ok bool) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for i := range l.xs {
		x, y := l.xs[i], l.ys[i]
		if !finite(x) || !finite(y) {
			continue
		}
		x0, x1 = math.Min(x0, x), math.Max(x1, x)
		y0, y1 = math.Min(y0, y), math.Max(y1, y)
		ok = true
	}
	return
}

func (b *Bars) extent() (x0, x1, y0, y1 float64, ok bool) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	hw := b.style.barWidth / 2
	for i := range b.xs {
		x, h := b.xs[i], b.heights[i]
		if !finite(x) || !finite(h) {
			continue
		}
		x0, x1 = math.Min(x0, x-hw), math.Max(x1, x+hw)
		y0, y1 = math.Min(y0, math.Min(0, h)), math.Max(y1, math.Max(0, h))
		ok = true
	}
	return
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
