package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/text"
)

// DrawText renders s with an x/image font drawer into an offscreen mask and
// maps the mask onto the canvas with an affine transform, which positions
// the anchor and applies the rotation in one step.
func (b *Backend) DrawText(s string, x, y float64, ts recording.TextStyle, brush recording.Brush) {
	if s == "" || b.img == nil {
		return
	}
	src := ts.Font
	if src == nil {
		src = text.DefaultSource()
	}
	face, err := src.Face(ts.Size).XFace()
	if err != nil {
		return
	}
	defer face.Close()

	m := face.Metrics()
	adv := font.MeasureString(face, s)
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	// One pixel of padding keeps antialiased edges from being cut.
	const pad = 1
	glyphs := image.NewAlpha(image.Rect(0, 0, adv.Ceil()+2*pad, ascent+descent+2*pad))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(pad, pad+ascent),
	}
	d.DrawString(s)

	// Anchor in mask coordinates.
	ax := pad + ts.Align.Fraction()*float64(adv)/64
	ay := float64(pad + ascent)

	theta := ts.Angle * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	aff := f64.Aff3{
		cos, sin, x - cos*ax - sin*ay,
		-sin, cos, y + sin*ax - cos*ay,
	}

	mask := image.NewAlpha(b.img.Bounds())
	xdraw.BiLinear.Transform(mask, aff, glyphs, glyphs.Bounds(), xdraw.Over, nil)
	b.composite(mask, recording.BrushColor(brush))
}
