package ggplot

import "github.com/gogpu/ggplot/paint"

// Geometry and color types shared with the recording packages.
type (
	// RGBA is a color with float components in [0, 1].
	RGBA = paint.RGBA
	// Point is a 2D point or vector.
	Point = paint.Point
	// Path is a vector path.
	Path = paint.Path
	// Rect is an axis-aligned rectangle.
	Rect = paint.Rect
)

// Common colors.
var (
	Black       = paint.Black
	White       = paint.White
	Red         = paint.Red
	Green       = paint.Green
	Blue        = paint.Blue
	Gray        = paint.Gray
	LightGray   = paint.LightGray
	Transparent = paint.Transparent
)

// Hex parses a "#rgb", "#rrggbb" or "#rrggbbaa" color, returning black for
// malformed input.
func Hex(s string) RGBA { return paint.Hex(s) }

// ParseColor parses a named color, a color cycle reference ("C0".."C9") or
// a hex color.
func ParseColor(s string) (RGBA, error) { return paint.ParseColor(s) }

// ColorCycle returns the i-th color of the default property cycle.
func ColorCycle(i int) RGBA { return paint.ColorCycle(i) }

// NewPath creates a new empty path.
func NewPath() *Path { return paint.NewPath() }
