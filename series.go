package ggplot

// Marker is the symbol drawn at each data point of a line.
type Marker uint8

const (
	// MarkerNone draws no markers.
	MarkerNone Marker = iota
	// MarkerCircle draws filled circles.
	MarkerCircle
	// MarkerSquare draws filled squares.
	MarkerSquare
)

// String returns the matplotlib marker code.
func (m Marker) String() string {
	switch m {
	case MarkerCircle:
		return "o"
	case MarkerSquare:
		return "s"
	default:
		return ""
	}
}

// ParseMarker maps "o", "circle", "s", "square", "" and "none" to a Marker.
func ParseMarker(s string) (Marker, bool) {
	switch s {
	case "", "none", "None":
		return MarkerNone, true
	case "o", "circle":
		return MarkerCircle, true
	case "s", "square":
		return MarkerSquare, true
	default:
		return MarkerNone, false
	}
}

// seriesStyle holds the visual properties shared by all series kinds.
type seriesStyle struct {
	label      string
	color      RGBA
	colorSet   bool
	lineWidth  float64
	dash       []float64
	marker     Marker
	markerSize float64
	noLine     bool
	barWidth   float64
}

// SeriesOption configures a series.
type SeriesOption func(*seriesStyle)

// WithLabel sets the legend label.
func WithLabel(label string) SeriesOption {
	return func(s *seriesStyle) { s.label = label }
}

// WithColor overrides the color taken from the color cycle.
func WithColor(c RGBA) SeriesOption {
	return func(s *seriesStyle) { s.color, s.colorSet = c, true }
}

// WithLineWidth sets the line width in points.
func WithLineWidth(w float64) SeriesOption {
	return func(s *seriesStyle) { s.lineWidth = w }
}

// WithDash sets a dash pattern in points; no arguments means solid.
func WithDash(lengths ...float64) SeriesOption {
	return func(s *seriesStyle) { s.dash = append([]float64(nil), lengths...) }
}

// WithMarker sets the marker drawn at each point.
func WithMarker(m Marker) SeriesOption {
	return func(s *seriesStyle) { s.marker = m }
}

// WithMarkerSize sets the marker diameter in points.
func WithMarkerSize(size float64) SeriesOption {
	return func(s *seriesStyle) { s.markerSize = size }
}

// WithBarWidth sets the bar width in data units. Bar series only.
func WithBarWidth(w float64) SeriesOption {
	return func(s *seriesStyle) { s.barWidth = w }
}

// Line is a series of connected points, optionally with markers.
// Scatter plots are lines without the connecting stroke.
type Line struct {
	xs, ys []float64
	style  seriesStyle
}

// Label returns the legend label.
func (l *Line) Label() string { return l.style.label }

// Color returns the line color.
func (l *Line) Color() RGBA { return l.style.color }

// Len returns the number of points.
func (l *Line) Len() int { return len(l.xs) }

// Bars is a bar series.
type Bars struct {
	xs, heights []float64
	style       seriesStyle
}

// Label returns the legend label.
func (b *Bars) Label() string { return b.style.label }

// Color returns the bar color.
func (b *Bars) Color() RGBA { return b.style.color }

// Len returns the number of bars.
func (b *Bars) Len() int { return len(b.xs) }

// series is implemented by *Line and *Bars.
type series interface {
	Label() string
	// extent returns the finite data bounds; ok is false without finite data.
	extent() (xlo, xhi, ylo, yhi float64, ok bool)
}
