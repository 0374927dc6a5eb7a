// Package figspec decodes declarative figure descriptions and builds
// ggplot figures from them.
//
// A description lists the figure size, an optional subplot grid and the
// axes with their series. The same structure is accepted as JSON, YAML or
// TOML:
//
//	size = [6.4, 4.8]
//	suptitle = "Results"
//
//	[[axes]]
//	title = "Throughput"
//	xlabel = "workers"
//
//	[[axes.series]]
//	kind = "line"
//	x = [1, 2, 4, 8]
//	y = [10, 19, 35, 52]
//	label = "measured"
package figspec

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned for an input format other than json, yaml or
// toml.
var ErrUnknownFormat = errors.New("figspec: unknown input format")

// ErrInvalid marks a description that decodes but cannot be built.
var ErrInvalid = errors.New("figspec: invalid description")

// Spec describes a figure.
type Spec struct {
	// Size is [width, height] in inches; empty means the default.
	Size     []float64  `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	DPI      float64    `json:"dpi,omitempty" yaml:"dpi,omitempty" toml:"dpi,omitempty"`
	Suptitle string     `json:"suptitle,omitempty" yaml:"suptitle,omitempty" toml:"suptitle,omitempty"`
	Layout   Layout     `json:"layout,omitempty" yaml:"layout,omitempty" toml:"layout,omitempty"`
	Axes     []AxesSpec `json:"axes,omitempty" yaml:"axes,omitempty" toml:"axes,omitempty"`
}

// Layout is the subplot grid. Zero rows and cols stack the axes
// vertically.
type Layout struct {
	Rows int `json:"rows,omitempty" yaml:"rows,omitempty" toml:"rows,omitempty"`
	Cols int `json:"cols,omitempty" yaml:"cols,omitempty" toml:"cols,omitempty"`
}

// AxesSpec describes one subplot.
type AxesSpec struct {
	Title  string       `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	XLabel string       `json:"xlabel,omitempty" yaml:"xlabel,omitempty" toml:"xlabel,omitempty"`
	YLabel string       `json:"ylabel,omitempty" yaml:"ylabel,omitempty" toml:"ylabel,omitempty"`
	XLim   []float64    `json:"xlim,omitempty" yaml:"xlim,omitempty" toml:"xlim,omitempty"`
	YLim   []float64    `json:"ylim,omitempty" yaml:"ylim,omitempty" toml:"ylim,omitempty"`
	Grid   bool         `json:"grid,omitempty" yaml:"grid,omitempty" toml:"grid,omitempty"`
	Legend bool         `json:"legend,omitempty" yaml:"legend,omitempty" toml:"legend,omitempty"`
	Series []SeriesSpec `json:"series,omitempty" yaml:"series,omitempty" toml:"series,omitempty"`
}

// SeriesSpec describes one series. Kind is "line" (the default),
// "scatter" or "bar"; for bars Y holds the heights.
type SeriesSpec struct {
	Kind       string    `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	X          []float64 `json:"x" yaml:"x" toml:"x"`
	Y          []float64 `json:"y" yaml:"y" toml:"y"`
	Label      string    `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Color      string    `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Width      float64   `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Dash       []float64 `json:"dash,omitempty" yaml:"dash,omitempty" toml:"dash,omitempty"`
	Marker     string    `json:"marker,omitempty" yaml:"marker,omitempty" toml:"marker,omitempty"`
	MarkerSize float64   `json:"marker_size,omitempty" yaml:"marker_size,omitempty" toml:"marker_size,omitempty"`
}

// FieldError reports which field of a description could not be used.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("figspec: %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, format string, args ...any) error {
	return &FieldError{Field: field, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)}
}
