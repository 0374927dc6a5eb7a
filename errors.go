package ggplot

import (
	"errors"

	"github.com/gogpu/ggplot/recording"
)

// Sentinel errors for the ggplot package.
var (
	// ErrInvalidSize is returned for a non-finite or non-positive figure
	// size or DPI.
	ErrInvalidSize = errors.New("ggplot: invalid figure size")

	// ErrInvalidGrid is returned when a subplot grid or index is out of range.
	ErrInvalidGrid = errors.New("ggplot: invalid subplot grid")

	// ErrLengthMismatch is returned when x and y data differ in length.
	ErrLengthMismatch = errors.New("ggplot: x and y must have the same length")

	// ErrInvalidLimits is returned by SetXLim and SetYLim for equal or
	// non-finite limits.
	ErrInvalidLimits = errors.New("ggplot: invalid axis limits")

	// ErrNoDisplay is returned by Show when no display is installed.
	ErrNoDisplay = errors.New("ggplot: no display installed")

	// ErrNotWriter is returned when a format's backend cannot write a stream.
	ErrNotWriter = errors.New("ggplot: backend does not write a stream")

	// ErrUnknownFormat is returned when no backend is registered for a format.
	ErrUnknownFormat = recording.ErrUnknownFormat
)
