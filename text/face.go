package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a Source at a specific size.
type Face struct {
	source *Source
	size   float64
}

// Metrics holds the vertical metrics of a face.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the line
	// (positive).
	Descent float64
	// LineGap is the recommended extra space between lines.
	LineGap float64
}

// LineHeight returns the baseline to baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Extents is the measured box of a single line of text.
type Extents struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (e Extents) Height() float64 {
	return e.Ascent + e.Descent
}

// Source returns the font the face was created from.
func (f *Face) Source() *Source { return f.source }

// Size returns the face size.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the vertical metrics at the face size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, toFixed(f.size), font.HintingNone)
	if err != nil {
		// Fall back to typical proportions for a sans-serif face.
		return Metrics{Ascent: 0.93 * f.size, Descent: 0.24 * f.size}
	}
	ascent := fromFixed(m.Ascent)
	descent := fromFixed(m.Descent)
	gap := fromFixed(m.Height) - ascent - descent
	return Metrics{Ascent: ascent, Descent: descent, LineGap: math.Max(gap, 0)}
}

// Advance returns the horizontal advance of s using the global Shaper.
// Results are memoized per source, size and string until the shaper
// changes.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	shaper := CurrentShaper()
	return advances.GetOrCreate(advanceKey{f.source, f.size, s}, func() float64 {
		return shaper.Advance(s, f)
	})
}

// Measure returns the extents of a single line of text.
func (f *Face) Measure(s string) Extents {
	m := f.Metrics()
	return Extents{Width: f.Advance(s), Ascent: m.Ascent, Descent: m.Descent}
}

// XFace returns a golang.org/x/image/font.Face for drawing glyphs.
// The returned face is not safe for concurrent use; callers create one
// per goroutine.
func (f *Face) XFace() (font.Face, error) {
	if f.size <= 0 || math.IsNaN(f.size) || math.IsInf(f.size, 0) {
		return nil, ErrInvalidSize
	}
	return opentype.NewFace(f.source.font, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
