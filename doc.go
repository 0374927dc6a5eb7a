// Package ggplot builds matplotlib-style figures and renders them headless.
//
// # Overview
//
// A Figure holds a grid of Axes; each Axes holds line, scatter and bar
// series. Rendering never opens a window: a figure is recorded into a
// [recording.Recording] and played back to an output backend registered
// under a format name, following the database/sql driver pattern.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggplot"
//	    _ "github.com/gogpu/ggplot/svgout"
//	)
//
//	fig, _ := ggplot.NewFigure()
//	ax := fig.Gca()
//	ax.Plot([]float64{0, 1}, []float64{0, 1})
//	fig.Show() // prints the SVG document to stdout
//
// # Showing figures
//
// Show dispatches to the process-wide Display installed with SetDisplay.
// Importing package svgout installs a display that tightens the layout,
// renders SVG into memory and prints it followed by one newline. Without an
// installed display Show returns ErrNoDisplay.
//
// # Units
//
// Figure sizes are in inches. Drawing is laid out in points (1/72 inch)
// with the origin at the top-left and y growing downward; raster formats
// scale points to pixels by DPI/72.
package ggplot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
