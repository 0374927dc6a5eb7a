// Package raster provides a PNG backend for the recording system.
// Paths are scan-converted with golang.org/x/image/vector, text is drawn
// with golang.org/x/image/font and rotated through golang.org/x/image/draw.
//
// Coordinates are pixels; a figure recorded for this backend has already
// been scaled from points by DPI/72.
//
// # Limitations
//
// The even-odd fill rule is rendered as non-zero. Right-to-left text is
// drawn in logical order.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ggplot/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("png")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	rec.Playback(backend)
//	img := backend.Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/recording"
)

// Compile-time interface checks.
var (
	_ recording.FileBackend  = (*Backend)(nil)
	_ recording.ImageBackend = (*Backend)(nil)
)

func init() {
	recording.Register(recording.Format{
		Name:       "png",
		Extensions: []string{".png"},
		MediaType:  "image/png",
		New: func() recording.Backend {
			return NewBackend()
		},
	})
}

// ErrNotStarted is returned by output methods before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// flattenTolerance is the maximum curve deviation in pixels.
const flattenTolerance = 0.1

// Backend renders recordings to an *image.RGBA.
// It implements recording.Backend, recording.WriterBackend and
// recording.ImageBackend.
type Backend struct {
	img  *image.RGBA
	rast *vector.Rasterizer

	clip      *image.Alpha
	clipStack []*image.Alpha
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent image of the given size, rounded up to
// whole pixels.
func (b *Backend) Begin(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("raster: invalid canvas size %vx%v", width, height)
	}
	w, h := pixels(width), pixels(height)
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	b.rast = vector.NewRasterizer(w, h)
	b.clip = nil
	b.clipStack = b.clipStack[:0]
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotStarted
	}
	return nil
}

// Save pushes the current clip mask.
func (b *Backend) Save() {
	b.clipStack = append(b.clipStack, b.clip)
}

// Restore pops the clip mask pushed by the matching Save.
func (b *Backend) Restore() {
	if len(b.clipStack) == 0 {
		return
	}
	b.clip = b.clipStack[len(b.clipStack)-1]
	b.clipStack = b.clipStack[:len(b.clipStack)-1]
}

// SetClip intersects the clip mask with the coverage of path.
func (b *Backend) SetClip(path *paint.Path, _ recording.FillRule) {
	if path == nil {
		return
	}
	// Masks are never mutated once installed, so a saved mask stays valid.
	mask := b.coverage(path)
	if b.clip != nil {
		multiply(mask, b.clip)
	}
	b.clip = mask
}

// ClearClip removes the clip mask.
func (b *Backend) ClearClip() {
	b.clip = nil
}

// BeginGroup is a no-op; pixels have no grouping.
func (b *Backend) BeginGroup(string) {}

// EndGroup is a no-op.
func (b *Backend) EndGroup() {}

// FillPath fills the given path with the brush.
func (b *Backend) FillPath(path *paint.Path, brush recording.Brush, _ recording.FillRule) {
	if path.IsEmpty() {
		return
	}
	b.composite(b.coverage(path), recording.BrushColor(brush))
}

// StrokePath strokes the given path with the brush and stroke style.
func (b *Backend) StrokePath(path *paint.Path, brush recording.Brush, stroke recording.Stroke) {
	if path.IsEmpty() {
		return
	}
	polys := strokePolygons(path.Flatten(flattenTolerance), stroke)
	if len(polys) == 0 {
		return
	}

	b.rast.Reset(b.img.Bounds().Dx(), b.img.Bounds().Dy())
	for _, poly := range polys {
		b.rast.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			b.rast.LineTo(float32(p.X), float32(p.Y))
		}
		b.rast.ClosePath()
	}
	mask := image.NewAlpha(b.img.Bounds())
	b.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	b.composite(mask, recording.BrushColor(brush))
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, b.img); err != nil {
		return cw.n, fmt.Errorf("raster: encode png: %w", err)
	}
	return cw.n, nil
}

// SaveToFile writes the output to the named file.
func (b *Backend) SaveToFile(path string) error {
	return recording.WriteFile(b, path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.img == nil {
		return nil
	}
	return b.img
}

// Width returns the image width in pixels.
func (b *Backend) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (b *Backend) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

// coverage scan-converts path into a fresh canvas-sized alpha mask.
func (b *Backend) coverage(path *paint.Path) *image.Alpha {
	b.rast.Reset(b.img.Bounds().Dx(), b.img.Bounds().Dy())
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case paint.MoveTo:
			if open {
				b.rast.ClosePath()
			}
			b.rast.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case paint.LineTo:
			b.rast.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case paint.QuadTo:
			b.rast.QuadTo(float32(e.Control.X), float32(e.Control.Y), float32(e.Point.X), float32(e.Point.Y))
		case paint.CubicTo:
			b.rast.CubeTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case paint.Close:
			b.rast.ClosePath()
			open = false
		}
	}
	if open {
		b.rast.ClosePath()
	}
	mask := image.NewAlpha(b.img.Bounds())
	b.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// composite paints c through mask, limited by the clip.
func (b *Backend) composite(mask *image.Alpha, c paint.RGBA) {
	if c.IsTransparent() {
		return
	}
	if b.clip != nil {
		multiply(mask, b.clip)
	}
	draw.DrawMask(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// multiply scales dst coverage by src coverage. Both masks cover the canvas.
func multiply(dst, src *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(src.Pix[i]) / 255)
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// pixels rounds a canvas dimension up to whole pixels, ignoring the
// rounding error left by unit conversions.
func pixels(v float64) int {
	return int(math.Ceil(v - 1e-9))
}
