package ggplot

import (
	"math"
	"strconv"

	"github.com/gogpu/ggplot/recording"
)

// Record draws the figure into a new recording. Drawing happens in points
// and is scaled by scale, so scale 1 yields a point-sized canvas for vector
// formats and DPI/72 a pixel-sized one.
//
// Groups follow matplotlib's SVG structure: figure_1 holds the background
// patch_1 and one axes_N group per axes, which in turn holds its
// background, the xaxis_N and yaxis_N groups with their xtick_K and
// ytick_K groups, the series, the spines, the title and the legend.
func (f *Figure) Record(scale float64) *recording.Recording {
	w, h := f.widthPt(), f.heightPt()
	d := &drawer{
		fig:    f,
		rec:    recording.NewRecorder(w*scale, h*scale),
		counts: make(map[string]int),
	}
	d.rec.Scale(scale, scale)

	d.begin("figure")
	d.begin("patch")
	d.rec.SetFillColor(f.face)
	d.rec.DrawRectangle(0, 0, w, h)
	d.rec.Fill()
	d.end()

	for _, ax := range f.axes {
		d.drawAxes(ax, f.axesRect(ax, f.params))
	}

	if f.suptitle != "" {
		m := f.font.Face(suptitleSize).Metrics()
		d.text(f.suptitle, w/2, (1-suptitleY)*h+m.Ascent, suptitleSize, recording.AlignCenter, 0)
	}
	d.end()
	return d.rec.FinishRecording()
}

// drawer carries the recorder and the per-prefix group counters.
type drawer struct {
	fig    *Figure
	rec    *recording.Recorder
	counts map[string]int
}

// begin opens a group named prefix_K with K counting from 1 per prefix.
func (d *drawer) begin(prefix string) {
	d.counts[prefix]++
	d.rec.BeginGroup(prefix + "_" + strconv.Itoa(d.counts[prefix]))
}

func (d *drawer) end() {
	d.rec.EndGroup()
}

// text draws s in its own text_K group.
func (d *drawer) text(s string, x, y, size float64, align recording.Align, angle float64) {
	d.begin("text")
	d.rec.SetFillColor(Black)
	d.rec.DrawText(s, x, y, recording.TextStyle{
		Size:   size,
		Family: d.family(),
		Font:   d.fig.font,
		Align:  align,
		Angle:  angle,
	})
	d.end()
}

func (d *drawer) family() string {
	name := d.fig.font.Family()
	if name == defaultFontFamily {
		return name
	}
	return name + ", " + defaultFontFamily
}

// line strokes a single segment in its own line2d_K group.
func (d *drawer) line(x0, y0, x1, y1 float64, c RGBA, width float64) {
	d.begin("line2d")
	d.rec.SetStrokeColor(c)
	d.rec.SetLineWidth(width)
	d.rec.SetLineCap(recording.LineCapButt)
	d.rec.ClearDash()
	d.rec.DrawLine(x0, y0, x1, y1)
	d.rec.Stroke()
	d.end()
}

func (d *drawer) drawAxes(ax *Axes, r Rect) {
	d.begin("axes")

	d.begin("patch")
	d.rec.SetFillColor(White)
	d.rec.DrawRectangle(r.MinX, r.MinY, r.Width(), r.Height())
	d.rec.Fill()
	d.end()

	xlo, xhi := ax.XLim()
	ylo, yhi := ax.YLim()
	face := d.fig.font.Face(fontSize)
	m := face.Metrics()

	d.begin("xaxis")
	xticks := ax.xticker.Ticks(xlo, xhi)
	for _, t := range xticks {
		x := xToDevice(t.Value, xlo, xhi, r)
		d.begin("xtick")
		if ax.grid {
			d.line(x, r.MaxY, x, r.MinY, gridColor, gridWidth)
		}
		d.line(x, r.MaxY, x, r.MaxY+tickLength, Black, tickWidth)
		d.text(t.Label, x, r.MaxY+tickLength+tickPad+m.Ascent, fontSize, recording.AlignCenter, 0)
		d.end()
	}
	if ax.xlabel != "" {
		y := r.MaxY + tickLength + labelPad + m.Ascent
		if len(xticks) > 0 {
			y += tickPad + m.Ascent + m.Descent
		}
		d.text(ax.xlabel, (r.MinX+r.MaxX)/2, y, fontSize, recording.AlignCenter, 0)
	}
	d.end()

	d.begin("yaxis")
	yticks := ax.yticker.Ticks(ylo, yhi)
	maxW := 0.0
	for _, t := range yticks {
		y := yToDevice(t.Value, ylo, yhi, r)
		d.begin("ytick")
		if ax.grid {
			d.line(r.MinX, y, r.MaxX, y, gridColor, gridWidth)
		}
		d.line(r.MinX, y, r.MinX-tickLength, y, Black, tickWidth)
		d.text(t.Label, r.MinX-tickLength-tickPad, y+(m.Ascent-m.Descent)/2, fontSize, recording.AlignRight, 0)
		d.end()
		maxW = math.Max(maxW, face.Advance(t.Label))
	}
	if ax.ylabel != "" {
		x := r.MinX - tickLength - labelPad - m.Descent
		if len(yticks) > 0 {
			x -= tickPad + maxW
		}
		d.text(ax.ylabel, x, (r.MinY+r.MaxY)/2, fontSize, recording.AlignCenter, 90)
	}
	d.end()

	for _, s := range ax.series {
		switch s := s.(type) {
		case *Line:
			d.drawLine(s, r, xlo, xhi, ylo, yhi)
		case *Bars:
			d.drawBars(s, r, xlo, xhi, ylo, yhi)
		}
	}

	d.drawSpines(r)

	if ax.title != "" {
		tm := d.fig.font.Face(titleSize).Metrics()
		d.text(ax.title, (r.MinX+r.MaxX)/2, r.MinY-titlePad-tm.Descent, titleSize, recording.AlignCenter, 0)
	}

	if ax.legend {
		d.drawLegend(ax, r)
	}
	d.end()
}

// clipTo restricts drawing to r until the matching Restore.
func (d *drawer) clipTo(r Rect) {
	d.rec.Save()
	d.rec.DrawRectangle(r.MinX, r.MinY, r.Width(), r.Height())
	d.rec.Clip()
}

func (d *drawer) drawLine(l *Line, r Rect, xlo, xhi, ylo, yhi float64) {
	d.begin("line2d")
	d.clipTo(r)

	if !l.style.noLine && l.style.lineWidth > 0 {
		d.rec.SetStrokeColor(l.style.color)
		d.rec.SetLineWidth(l.style.lineWidth)
		d.rec.SetLineJoin(recording.LineJoinRound)
		if len(l.style.dash) > 0 {
			d.rec.SetLineCap(recording.LineCapButt)
			d.rec.SetDash(l.style.dash...)
		} else {
			d.rec.SetLineCap(recording.LineCapSquare)
			d.rec.ClearDash()
		}
		penDown := false
		for i := range l.xs {
			if !finite(l.xs[i]) || !finite(l.ys[i]) {
				penDown = false
				continue
			}
			x := xToDevice(l.xs[i], xlo, xhi, r)
			y := yToDevice(l.ys[i], ylo, yhi, r)
			if penDown {
				d.rec.LineTo(x, y)
			} else {
				d.rec.MoveTo(x, y)
				penDown = true
			}
		}
		d.rec.Stroke()
	}

	if l.style.marker != MarkerNone && l.style.markerSize > 0 {
		d.rec.SetFillColor(l.style.color)
		for i := range l.xs {
			if !finite(l.xs[i]) || !finite(l.ys[i]) {
				continue
			}
			d.marker(l.style.marker, xToDevice(l.xs[i], xlo, xhi, r), yToDevice(l.ys[i], ylo, yhi, r), l.style.markerSize)
		}
		d.rec.Fill()
	}

	d.rec.Restore()
	d.end()
}

// marker adds a marker of diameter size centered at (x, y) to the path.
func (d *drawer) marker(m Marker, x, y, size float64) {
	switch m {
	case MarkerCircle:
		d.rec.DrawCircle(x, y, size/2)
	case MarkerSquare:
		d.rec.DrawRectangle(x-size/2, y-size/2, size, size)
	}
}

func (d *drawer) drawBars(b *Bars, r Rect, xlo, xhi, ylo, yhi float64) {
	d.begin("bars")
	d.clipTo(r)
	d.rec.SetFillColor(b.style.color)
	hw := b.style.barWidth / 2
	for i := range b.xs {
		if !finite(b.xs[i]) || !finite(b.heights[i]) {
			continue
		}
		x0 := xToDevice(b.xs[i]-hw, xlo, xhi, r)
		x1 := xToDevice(b.xs[i]+hw, xlo, xhi, r)
		y0 := yToDevice(0, ylo, yhi, r)
		y1 := yToDevice(b.heights[i], ylo, yhi, r)
		d.begin("patch")
		d.rec.DrawRectangle(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0))
		d.rec.Fill()
		d.end()
	}
	d.rec.Restore()
	d.end()
}

func (d *drawer) drawSpines(r Rect) {
	spines := [4][4]float64{
		{r.MinX, r.MaxY, r.MinX, r.MinY}, // left
		{r.MaxX, r.MaxY, r.MaxX, r.MinY}, // right
		{r.MinX, r.MaxY, r.MaxX, r.MaxY}, // bottom
		{r.MinX, r.MinY, r.MaxX, r.MinY}, // top
	}
	for _, s := range spines {
		d.begin("patch")
		d.rec.SetStrokeColor(Black)
		d.rec.SetLineWidth(spineWidth)
		d.rec.SetLineCap(recording.LineCapSquare)
		d.rec.SetLineJoin(recording.LineJoinMiter)
		d.rec.ClearDash()
		d.rec.DrawLine(s[0], s[1], s[2], s[3])
		d.rec.Stroke()
		d.end()
	}
}

func (d *drawer) drawLegend(ax *Axes, r Rect) {
	var entries []series
	for _, s := range ax.series {
		if s.Label() != "" {
			entries = append(entries, s)
		}
	}
	if len(entries) == 0 {
		return
	}

	face := d.fig.font.Face(legendSize)
	m := face.Metrics()
	rowH := m.Ascent + m.Descent
	pad := legendPadding * legendSize
	handle := legendHandle * legendSize
	textPad := legendTextPad * legendSize
	spacing := legendSpacing * legendSize

	labelW := 0.0
	for _, e := range entries {
		labelW = math.Max(labelW, face.Advance(e.Label()))
	}
	boxW := 2*pad + handle + textPad + labelW
	boxH := 2*pad + float64(len(entries))*rowH + float64(len(entries)-1)*spacing
	x0 := r.MaxX - legendBorder*legendSize - boxW
	y0 := r.MinY + legendBorder*legendSize

	d.begin("legend")

	d.begin("patch")
	d.rec.SetFillColor(legendFrameColor)
	d.rec.SetStrokeColor(legendEdgeColor)
	d.rec.SetLineWidth(spineWidth)
	d.rec.SetLineJoin(recording.LineJoinMiter)
	d.rec.ClearDash()
	d.rec.DrawRectangle(x0, y0, boxW, boxH)
	d.rec.FillStroke()
	d.end()

	for i, e := range entries {
		top := y0 + pad + float64(i)*(rowH+spacing)
		cy := top + rowH/2
		hx0, hx1 := x0+pad, x0+pad+handle

		switch e := e.(type) {
		case *Line:
			d.begin("line2d")
			if !e.style.noLine && e.style.lineWidth > 0 {
				d.rec.SetStrokeColor(e.style.color)
				d.rec.SetLineWidth(e.style.lineWidth)
				d.rec.SetLineCap(recording.LineCapSquare)
				d.rec.SetDash(e.style.dash...)
				d.rec.DrawLine(hx0, cy, hx1, cy)
				d.rec.Stroke()
			}
			if e.style.marker != MarkerNone {
				d.rec.SetFillColor(e.style.color)
				d.marker(e.style.marker, (hx0+hx1)/2, cy, e.style.markerSize)
				d.rec.Fill()
			}
			d.end()
		case *Bars:
			d.begin("patch")
			d.rec.SetFillColor(e.style.color)
			d.rec.DrawRectangle(hx0, top+rowH*0.15, handle, rowH*0.7)
			d.rec.Fill()
			d.end()
		}

		d.text(e.Label(), hx1+textPad, top+m.Ascent, legendSize, recording.AlignLeft, 0)
	}
	d.end()
}
