package recording

import "github.com/gogpu/ggplot/paint"

// Brush represents a fill/stroke style for recording commands.
// This is a sealed interface - only types in this package implement it.
type Brush interface {
	brushMarker()
}

// SolidBrush is a solid color brush.
type SolidBrush struct {
	Color paint.RGBA
}

func (SolidBrush) brushMarker() {}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(color paint.RGBA) SolidBrush {
	return SolidBrush{Color: color}
}

// BrushColor returns the color of a solid brush. Nil or unknown brushes
// yield opaque black, the default paint.
func BrushColor(b Brush) paint.RGBA {
	if sb, ok := b.(SolidBrush); ok {
		return sb.Color
	}
	return paint.Black
}
