package ggplot

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gogpu/ggplot/recording"
	// Register the built-in output formats.
	_ "github.com/gogpu/ggplot/recording/backends/raster"
	_ "github.com/gogpu/ggplot/recording/backends/svg"
)

// Render writes the figure to w in the named format, e.g. "svg" or "png".
// It is the equivalent of matplotlib's savefig on a stream: the figure is
// recorded and played back to the backend registered for format.
//
// Nothing is written to w when recording or playback fails.
func (f *Figure) Render(w io.Writer, format string) error {
	desc, err := recording.Lookup(format)
	if err != nil {
		return fmt.Errorf("ggplot: render: %w", err)
	}
	return f.render(w, desc)
}

// SaveFile writes the figure to path in the format selected by the file
// extension. The file is not created when rendering fails.
func (f *Figure) SaveFile(path string) error {
	desc, err := recording.LookupPath(path)
	if err != nil {
		return fmt.Errorf("ggplot: save %s: %w", filepath.Base(path), err)
	}
	return f.save(path, desc)
}

// SaveFileAs is SaveFile with the format named explicitly, whatever the
// extension of path.
func (f *Figure) SaveFileAs(path, format string) error {
	desc, err := recording.Lookup(format)
	if err != nil {
		return fmt.Errorf("ggplot: save %s: %w", filepath.Base(path), err)
	}
	return f.save(path, desc)
}

func (f *Figure) save(path string, desc recording.Format) error {
	backend, err := f.play(desc)
	if err != nil {
		return err
	}
	if fb, ok := backend.(recording.FileBackend); ok {
		err = fb.SaveToFile(path)
	} else {
		err = recording.WriteFile(backend, path)
	}
	if err != nil {
		return fmt.Errorf("ggplot: save: %w", err)
	}
	Logger().Info("ggplot: figure saved", "path", path, "format", desc.Name)
	return nil
}

func (f *Figure) render(w io.Writer, desc recording.Format) error {
	backend, err := f.play(desc)
	if err != nil {
		return err
	}
	if _, err := backend.WriteTo(w); err != nil {
		return fmt.Errorf("ggplot: write %s: %w", desc.Name, err)
	}
	return nil
}

// play records the figure and plays it back to a new backend for desc.
func (f *Figure) play(desc recording.Format) (recording.WriterBackend, error) {
	backend, ok := desc.New().(recording.WriterBackend)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotWriter, desc.Name)
	}

	scale := 1.0
	if !desc.Vector {
		scale = f.dpi / 72
	}
	rec := f.Record(scale)
	if err := rec.Playback(backend); err != nil {
		return nil, fmt.Errorf("ggplot: render %s: %w", desc.Name, err)
	}

	Logger().Debug("ggplot: figure rendered",
		"format", desc.Name, "axes", len(f.axes), "commands", len(rec.Commands()))
	return backend, nil
}
