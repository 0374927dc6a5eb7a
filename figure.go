package ggplot

import (
	"fmt"
	"math"

	"github.com/gogpu/ggplot/text"
)

// SubplotParams positions the subplot grid inside the figure. Left, Right,
// Bottom and Top are figure fractions measured from the bottom-left corner;
// WSpace and HSpace are the gaps between cells as fractions of the average
// axes width and height.
type SubplotParams struct {
	Left, Right float64
	Bottom, Top float64
	WSpace      float64
	HSpace      float64
}

// DefaultSubplotParams returns matplotlib's figure.subplot defaults.
func DefaultSubplotParams() SubplotParams {
	return SubplotParams{
		Left:   0.125,
		Right:  0.9,
		Bottom: 0.11,
		Top:    0.88,
		WSpace: 0.2,
		HSpace: 0.2,
	}
}

// Figure is the top level container of a plot.
//
// A Figure is not safe for concurrent mutation.
type Figure struct {
	width, height float64 // inches
	dpi           float64
	face          RGBA
	font          *text.Source
	suptitle      string
	params        SubplotParams
	axes          []*Axes
}

// NewFigure creates an empty figure.
func NewFigure(opts ...FigureOption) (*Figure, error) {
	o := defaultFigureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !positive(o.width) || !positive(o.height) {
		return nil, fmt.Errorf("%w: %vx%v inches", ErrInvalidSize, o.width, o.height)
	}
	if !positive(o.dpi) {
		return nil, fmt.Errorf("%w: dpi %v", ErrInvalidSize, o.dpi)
	}
	if o.font == nil {
		o.font = text.DefaultSource()
	}
	return &Figure{
		width:  o.width,
		height: o.height,
		dpi:    o.dpi,
		face:   o.face,
		font:   o.font,
		params: DefaultSubplotParams(),
	}, nil
}

// MustFigure is like NewFigure but panics on error.
func MustFigure(opts ...FigureOption) *Figure {
	f, err := NewFigure(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Size returns the figure size in inches.
func (f *Figure) Size() (width, height float64) { return f.width, f.height }

// DPI returns the figure resolution.
func (f *Figure) DPI() float64 { return f.dpi }

// Font returns the font used for all text in the figure.
func (f *Figure) Font() *text.Source { return f.font }

// SetSuptitle sets a centered title above all subplots. An empty string
// removes it.
func (f *Figure) SetSuptitle(s string) { f.suptitle = s }

// Suptitle returns the figure title.
func (f *Figure) Suptitle() string { return f.suptitle }

// SubplotParams returns the current subplot parameters.
func (f *Figure) SubplotParams() SubplotParams { return f.params }

// SetSubplotParams replaces the subplot parameters.
func (f *Figure) SetSubplotParams(p SubplotParams) { f.params = p }

// AddSubplot adds an axes at position index (1-based, row-major) of a
// rows x cols grid.
func (f *Figure) AddSubplot(rows, cols, index int) (*Axes, error) {
	if rows < 1 || cols < 1 || index < 1 || index > rows*cols {
		return nil, fmt.Errorf("%w: %d rows, %d cols, index %d", ErrInvalidGrid, rows, cols, index)
	}
	ax := newAxes(f, rows, cols, index)
	f.axes = append(f.axes, ax)
	return ax, nil
}

// Subplots adds a full rows x cols grid of axes, returned in row-major
// order.
func (f *Figure) Subplots(rows, cols int) ([]*Axes, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d rows, %d cols", ErrInvalidGrid, rows, cols)
	}
	out := make([]*Axes, 0, rows*cols)
	for i := 1; i <= rows*cols; i++ {
		ax, err := f.AddSubplot(rows, cols, i)
		if err != nil {
			return nil, err
		}
		out = append(out, ax)
	}
	return out, nil
}

// Axes returns the axes of the figure in creation order.
func (f *Figure) Axes() []*Axes {
	out := make([]*Axes, len(f.axes))
	copy(out, f.axes)
	return out
}

// Gca returns the most recently added axes, adding a single 1x1 axes when
// the figure has none.
func (f *Figure) Gca() *Axes {
	if len(f.axes) == 0 {
		ax, _ := f.AddSubplot(1, 1, 1)
		return ax
	}
	return f.axes[len(f.axes)-1]
}

// Clear removes all axes and the suptitle and restores the default subplot
// parameters.
func (f *Figure) Clear() {
	f.axes = nil
	f.suptitle = ""
	f.params = DefaultSubplotParams()
}

// widthPt and heightPt return the figure size in points.
func (f *Figure) widthPt() float64  { return f.width * 72 }
func (f *Figure) heightPt() float64 { return f.height * 72 }

// axesRect returns the rectangle of ax in points for the given subplot
// parameters, origin top-left.
func (f *Figure) axesRect(ax *Axes, p SubplotParams) Rect {
	w, h := f.widthPt(), f.heightPt()
	row := (ax.index - 1) / ax.cols
	col := (ax.index - 1) % ax.cols

	cellW := (p.Right - p.Left) * w / (float64(ax.cols) + p.WSpace*float64(ax.cols-1))
	cellH := (p.Top - p.Bottom) * h / (float64(ax.rows) + p.HSpace*float64(ax.rows-1))

	x0 := p.Left*w + float64(col)*cellW*(1+p.WSpace)
	y0 := (1-p.Top)*h + float64(row)*cellH*(1+p.HSpace)
	return Rect{MinX: x0, MinY: y0, MaxX: x0 + cellW, MaxY: y0 + cellH}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
