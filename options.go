package ggplot

import "github.com/gogpu/ggplot/text"

// FigureOption configures a Figure during creation.
//
// Example:
//
//	// Default 6.4x4.8 inch figure at 100 DPI
//	fig, err := ggplot.NewFigure()
//
//	// Wide figure for a report
//	fig, err := ggplot.NewFigure(ggplot.WithSize(10, 4), ggplot.WithDPI(150))
type FigureOption func(*figureOptions)

// figureOptions holds optional configuration for Figure creation.
type figureOptions struct {
	width, height float64
	dpi           float64
	face          RGBA
	font          *text.Source
}

// defaultFigureOptions returns matplotlib's rcParams defaults.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		width:  6.4,
		height: 4.8,
		dpi:    100,
		face:   White,
	}
}

// WithSize sets the figure size in inches.
func WithSize(width, height float64) FigureOption {
	return func(o *figureOptions) {
		o.width = width
		o.height = height
	}
}

// WithDPI sets the resolution used by raster formats.
func WithDPI(dpi float64) FigureOption {
	return func(o *figureOptions) {
		o.dpi = dpi
	}
}

// WithFaceColor sets the figure background color.
func WithFaceColor(c RGBA) FigureOption {
	return func(o *figureOptions) {
		o.face = c
	}
}

// WithFont sets the font used to measure and draw every text of the figure.
// The default is text.DefaultSource().
func WithFont(src *text.Source) FigureOption {
	return func(o *figureOptions) {
		o.font = src
	}
}

// TightOption configures TightLayout.
type TightOption func(*tightOptions)

// tightOptions holds paddings as fractions of the font size.
type tightOptions struct {
	pad  float64
	hPad float64
	wPad float64
	// set records which of hPad and wPad were given explicitly.
	hSet, wSet bool
}

func defaultTightOptions() tightOptions {
	return tightOptions{pad: 1.08}
}

// WithPad sets the padding between the figure edge and the edges of
// subplots, as a fraction of the font size.
func WithPad(pad float64) TightOption {
	return func(o *tightOptions) {
		o.pad = pad
	}
}

// WithHPad sets the vertical padding between adjacent subplots, as a
// fraction of the font size. It defaults to the pad.
func WithHPad(pad float64) TightOption {
	return func(o *tightOptions) {
		o.hPad, o.hSet = pad, true
	}
}

// WithWPad sets the horizontal padding between adjacent subplots, as a
// fraction of the font size. It defaults to the pad.
func WithWPad(pad float64) TightOption {
	return func(o *tightOptions) {
		o.wPad, o.wSet = pad, true
	}
}
