package recording

import "github.com/gogpu/ggplot/text"

// FillRule decides which regions of a self-intersecting path are inside.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// LineCap is the shape drawn at open ends of a stroke.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape drawn where two stroke segments meet.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Stroke describes an outline. Lengths are in device units.
type Stroke struct {
	Width       float64
	Cap         LineCap
	Join        LineJoin
	MiterLimit  float64
	DashPattern []float64 // nil is solid
	DashOffset  float64
}

// Align says which point of a text run sits on its anchor.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Fraction is the part of the advance that falls left of the anchor.
func (a Align) Fraction() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	}
	return 0
}

// TextStyle is what a backend needs to place a text run.
type TextStyle struct {
	Size   float64 // device units
	Family string  // CSS font-family list
	// Font is used by raster backends; nil selects text.DefaultSource().
	Font  *text.Source
	Align Align
	Angle float64 // degrees, counterclockwise
}
