package recording

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gogpu/ggplot/paint"
)

// Backend is the interface that all export backends must implement.
// Backends receive high-level drawing commands and translate them to
// their output format (SVG elements, raster pixels, etc.).
//
// # Implementation Contract
//
// Each backend must:
//  1. Register its format in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Manage its own state stack for Save/Restore
type Backend interface {
	// Begin initializes the backend for a canvas of the given size in
	// device units. It must be called before any drawing operation.
	Begin(width, height float64) error

	// End finalizes the output. Output methods are valid afterwards.
	End() error

	// Save pushes the clip state. Restore pops it; on an empty stack it is
	// a no-op.
	Save()
	Restore()

	// SetClip intersects the clip with path. It stays in effect until
	// ClearClip or the Restore matching the enclosing Save.
	SetClip(path *paint.Path, rule FillRule)
	ClearClip()

	// BeginGroup opens a named group of drawing operations. Backends
	// without a notion of grouping ignore it.
	BeginGroup(id string)
	EndGroup()

	// FillPath fills the given path with the brush.
	FillPath(path *paint.Path, brush Brush, rule FillRule)

	// StrokePath strokes the given path with the brush and stroke style.
	StrokePath(path *paint.Path, brush Brush, stroke Stroke)

	// DrawText draws s anchored at (x, y) on the baseline. style.Align
	// selects which point of the text the anchor is; style.Angle rotates
	// the text counter-clockwise around the anchor.
	DrawText(s string, x, y float64, style TextStyle, brush Brush)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to the rendered pixels.
// This is implemented by raster backends.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End().
	Image() image.Image
}

// FileBackend extends WriterBackend with direct file output.
type FileBackend interface {
	WriterBackend

	// SaveToFile writes the rendered content to the named file.
	// This should only be called after End().
	SaveToFile(path string) error
}

// WriteFile creates path and writes the output of b to it.
func WriteFile(b WriterBackend, path string) (err error) {
	// #nosec G304 -- output path is provided by the caller
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if _, err := b.WriteTo(f); err != nil {
		return fmt.Errorf("recording: write %s: %w", path, err)
	}
	return nil
}
