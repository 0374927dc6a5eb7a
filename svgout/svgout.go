// Package svgout displays figures by printing them as SVG documents.
//
// Importing the package installs its display process-wide, so that
// Figure.Show prints the figure to standard output instead of opening a
// window:
//
//	import (
//		"github.com/gogpu/ggplot"
//		_ "github.com/gogpu/ggplot/svgout"
//	)
//
//	fig := ggplot.MustFigure()
//	ax := fig.Gca()
//	ax.Plot([]float64{0, 1}, []float64{0, 1})
//	if err := fig.Show(); err != nil {
//		log.Fatal(err)
//	}
//
// Each Show writes exactly one complete SVG document followed by a single
// newline, which makes plot output capturable by anything that reads text:
// notebook cells, pipes and execution sandboxes.
package svgout

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gogpu/ggplot"
)

// Display prints figures as SVG to a writer.
type Display struct {
	w     io.Writer
	tight bool
}

// Option configures a Display.
type Option func(*Display)

// WithoutTightLayout skips the layout pass Show normally runs before
// rendering, keeping the figure's subplot parameters as they are.
func WithoutTightLayout() Option {
	return func(d *Display) {
		d.tight = false
	}
}

// New returns a display writing to w.
func New(w io.Writer, opts ...Option) *Display {
	d := &Display{w: w, tight: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Writer returns the writer the display prints to.
func (d *Display) Writer() io.Writer { return d.w }

// Show tightens the figure layout, renders the figure to SVG in memory and
// prints the document followed by a newline.
//
// Layout and render errors are returned as is; nothing is written when one
// occurs.
func (d *Display) Show(fig *ggplot.Figure) error {
	if d.tight {
		if err := fig.TightLayout(); err != nil {
			return fmt.Errorf("svgout: layout: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := fig.Render(&buf, "svg"); err != nil {
		return fmt.Errorf("svgout: %w", err)
	}
	if _, err := fmt.Fprintln(d.w, buf.String()); err != nil {
		return fmt.Errorf("svgout: write: %w", err)
	}
	return nil
}

// stdout is the single display installed by Install.
var stdout = sync.OnceValue(func() *Display {
	return New(os.Stdout)
})

// Install makes the standard output display the process-wide display used
// by Figure.Show. It is called when the package is imported; calling it
// again installs the same display.
func Install() {
	ggplot.SetDisplay(stdout())
	ggplot.Logger().Debug("svgout: display installed", "writer", "stdout")
}

func init() {
	Install()
}
