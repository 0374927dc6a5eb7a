// Command ggdemo renders a gallery of the ggplot chart types.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/ggplot"
)

func main() {
	var (
		width  = flag.Float64("width", 10, "figure width in inches")
		height = flag.Float64("height", 7.5, "figure height in inches")
		dpi    = flag.Float64("dpi", 100, "resolution for raster output")
		output = flag.String("output", "demo.png", "output file (.png or .svg)")
	)
	flag.Parse()

	fig, err := ggplot.NewFigure(ggplot.WithSize(*width, *height), ggplot.WithDPI(*dpi))
	if err != nil {
		log.Fatalf("Failed to create figure: %v", err)
	}
	fig.SetSuptitle("ggplot gallery")

	axes, err := fig.Subplots(2, 2)
	if err != nil {
		log.Fatalf("Failed to create subplots: %v", err)
	}

	drawWaves(axes[0])
	drawScatter(axes[1])
	drawBars(axes[2])
	drawDecay(axes[3])

	if err := fig.TightLayout(); err != nil {
		log.Fatalf("Layout failed: %v", err)
	}
	if err := fig.SaveFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, h := fig.Size()
	log.Printf("Demo saved to %s (%.1fx%.1f in at %.0f dpi)\n", *output, w, h, fig.DPI())
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func apply(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

func drawWaves(ax *ggplot.Axes) {
	xs := linspace(0, 2*math.Pi, 100)
	_, _ = ax.Plot(xs, apply(xs, math.Sin), ggplot.WithLabel("sin"))
	_, _ = ax.Plot(xs, apply(xs, math.Cos), ggplot.WithLabel("cos"), ggplot.WithDash(6, 3))
	ax.SetTitle("Waves")
	ax.SetXLabel("radians")
	ax.Grid(true)
	ax.Legend(true)
}

func drawScatter(ax *ggplot.Axes) {
	// Deterministic cloud around y = x.
	n := 40
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range n {
		x := float64(i) / float64(n)
		xs[i] = x
		ys[i] = x + 0.15*math.Sin(float64(i)*12.9898)
	}
	_, _ = ax.Scatter(xs, ys, ggplot.WithMarkerSize(5))
	ax.SetTitle("Scatter")
}

func drawBars(ax *ggplot.Axes) {
	_, _ = ax.Bar([]float64{1, 2, 3, 4, 5}, []float64{3, 7, 4, -2, 5}, ggplot.WithLabel("delta"))
	ax.SetXTicker(ggplot.FixedTicker{
		{Value: 1, Label: "Mon"}, {Value: 2, Label: "Tue"}, {Value: 3, Label: "Wed"},
		{Value: 4, Label: "Thu"}, {Value: 5, Label: "Fri"},
	})
	ax.SetTitle("Bars")
	ax.SetYLabel("change")
}

func drawDecay(ax *ggplot.Axes) {
	xs := linspace(0, 5, 11)
	_, _ = ax.Plot(xs, apply(xs, func(x float64) float64 { return math.Exp(-x) }),
		ggplot.WithMarker(ggplot.MarkerSquare), ggplot.WithColor(ggplot.Hex("#8c564b")))
	ax.SetTitle("Decay")
	_ = ax.SetYLim(0, 1.1)
}
