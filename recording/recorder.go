package recording

import (
	"errors"

	"github.com/gogpu/ggplot/paint"
)

// ErrUnbalancedGroups is returned by Playback when BeginGroup and EndGroup
// calls do not pair up.
var ErrUnbalancedGroups = errors.New("recording: unbalanced groups")

// gstate is the part of a Recorder that Save and Restore round-trip.
// Slices in it are replaced, never written through, so copies may share them.
type gstate struct {
	fillBrush   Brush
	strokeBrush Brush
	lineWidth   float64
	lineCap     LineCap
	lineJoin    LineJoin
	miterLimit  float64
	dashPattern []float64
	dashOffset  float64
	fillRule    FillRule
	transform   paint.Matrix
}

// Recorder turns drawing calls into a command list instead of pixels.
// Coordinates are mapped through the current transform as they are
// recorded, so a finished Recording holds device-space geometry only.
//
//	rec := recording.NewRecorder(800, 600)
//	rec.SetFillColor(paint.Red)
//	rec.DrawCircle(100, 100, 50)
//	rec.Fill()
//	r := rec.FinishRecording()
//
// A Recorder must not be used from more than one goroutine.
type Recorder struct {
	gstate

	width, height float64
	commands      []Command
	resources     *ResourcePool
	path          *paint.Path
	saved         []gstate
}

// NewRecorder returns a Recorder for a width x height canvas with black
// paint, unit butt-capped mitered lines, the non-zero rule and no transform.
func NewRecorder(width, height float64) *Recorder {
	black := NewSolidBrush(paint.Black)
	return &Recorder{
		gstate: gstate{
			fillBrush:   black,
			strokeBrush: black,
			lineWidth:   1,
			lineCap:     LineCapButt,
			lineJoin:    LineJoinMiter,
			miterLimit:  4,
			fillRule:    FillRuleNonZero,
			transform:   paint.Identity(),
		},
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		path:      paint.NewPath(),
	}
}

// FinishRecording hands over the commands. The Recorder is spent afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Width returns the canvas width.
func (r *Recorder) Width() float64 { return r.width }

// Height returns the canvas height.
func (r *Recorder) Height() float64 { return r.height }

func (r *Recorder) emit(c Command) { r.commands = append(r.commands, c) }

// Save pushes the graphics state.
func (r *Recorder) Save() {
	r.saved = append(r.saved, r.gstate)
	r.emit(SaveCommand{})
}

// Restore pops the graphics state. With nothing saved it does nothing.
func (r *Recorder) Restore() {
	n := len(r.saved)
	if n == 0 {
		return
	}
	r.gstate, r.saved = r.saved[n-1], r.saved[:n-1]
	r.emit(RestoreCommand{})
}

// BeginGroup opens a group named id. Every group needs a matching EndGroup
// before playback.
func (r *Recorder) BeginGroup(id string) {
	r.emit(BeginGroupCommand{ID: id})
}

// EndGroup closes the innermost group.
func (r *Recorder) EndGroup() { r.emit(EndGroupCommand{}) }

// Translate prepends a shift to the current transform.
func (r *Recorder) Translate(x, y float64) {
	r.transform = r.transform.Multiply(paint.Translate(x, y))
}

// Scale prepends a stretch to the current transform.
func (r *Recorder) Scale(sx, sy float64) {
	r.transform = r.transform.Multiply(paint.Scale(sx, sy))
}

// SetFillColor sets the paint for Fill and DrawText.
func (r *Recorder) SetFillColor(c paint.RGBA) { r.fillBrush = NewSolidBrush(c) }

// SetStrokeColor sets the paint for Stroke.
func (r *Recorder) SetStrokeColor(c paint.RGBA) { r.strokeBrush = NewSolidBrush(c) }

// SetLineWidth sets the stroke width in user units.
func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }

// SetLineCap sets the shape of open stroke ends.
func (r *Recorder) SetLineCap(c LineCap) { r.lineCap = c }

// SetLineJoin sets the shape of stroke corners.
func (r *Recorder) SetLineJoin(j LineJoin) { r.lineJoin = j }

// SetFillRule sets the rule used by Fill and Clip.
func (r *Recorder) SetFillRule(rule FillRule) { r.fillRule = rule }

// SetDash sets on/off lengths in user units. No arguments means solid.
func (r *Recorder) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		r.ClearDash()
		return
	}
	r.dashPattern = append([]float64(nil), lengths...)
}

// ClearDash returns to solid lines.
func (r *Recorder) ClearDash() {
	r.dashPattern, r.dashOffset = nil, 0
}

// MoveTo starts a subpath.
func (r *Recorder) MoveTo(x, y float64) {
	r.path.MoveTo(r.transform.TransformPoint(x, y))
}

// LineTo extends the current subpath.
func (r *Recorder) LineTo(x, y float64) {
	r.path.LineTo(r.transform.TransformPoint(x, y))
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() { r.path.Close() }

// AppendPath adds the verbs of p, mapped by the current transform.
func (r *Recorder) AppendPath(p *paint.Path) {
	for _, e := range p.Transform(r.transform).Elements() {
		switch e := e.(type) {
		case paint.MoveTo:
			r.path.MoveTo(e.Point.X, e.Point.Y)
		case paint.LineTo:
			r.path.LineTo(e.Point.X, e.Point.Y)
		case paint.QuadTo:
			r.path.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case paint.CubicTo:
			r.path.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case paint.Close:
			r.path.Close()
		}
	}
}

// takePath interns the current path and starts a fresh one. It returns
// false when there was nothing to take.
func (r *Recorder) takePath() (PathRef, bool) {
	if r.path.IsEmpty() {
		return 0, false
	}
	ref := r.resources.adoptPath(r.path)
	r.path = paint.NewPath()
	return ref, true
}

func (r *Recorder) fillCmd(ref PathRef) Command {
	return FillPathCommand{Path: ref, Brush: r.resources.AddBrush(r.fillBrush), Rule: r.fillRule}
}

// strokeCmd scales width and dashes into device units.
func (r *Recorder) strokeCmd(ref PathRef) Command {
	k := r.transform.ScaleFactor()
	s := Stroke{
		Width:      r.lineWidth * k,
		Cap:        r.lineCap,
		Join:       r.lineJoin,
		MiterLimit: r.miterLimit,
		DashOffset: r.dashOffset * k,
	}
	for _, d := range r.dashPattern {
		s.DashPattern = append(s.DashPattern, d*k)
	}
	return StrokePathCommand{Path: ref, Brush: r.resources.AddBrush(r.strokeBrush), Stroke: s}
}

// Fill paints the inside of the current path and clears it.
func (r *Recorder) Fill() {
	if ref, ok := r.takePath(); ok {
		r.emit(r.fillCmd(ref))
	}
}

// Stroke outlines the current path and clears it.
func (r *Recorder) Stroke() {
	if ref, ok := r.takePath(); ok {
		r.emit(r.strokeCmd(ref))
	}
}

// FillStroke fills and then outlines the same path, then clears it.
func (r *Recorder) FillStroke() {
	if ref, ok := r.takePath(); ok {
		r.emit(r.fillCmd(ref))
		r.emit(r.strokeCmd(ref))
	}
}

// Clip narrows the clip to the current path and clears it.
func (r *Recorder) Clip() {
	if ref, ok := r.takePath(); ok {
		r.emit(SetClipCommand{Path: ref, Rule: r.fillRule})
	}
}

// ResetClip drops any clip.
func (r *Recorder) ResetClip() { r.emit(ClearClipCommand{}) }

// DrawLine adds a segment between two points to the current path.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.MoveTo(x1, y1)
	r.LineTo(x2, y2)
}

// DrawRectangle adds a closed rectangle to the current path.
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	p := paint.NewPath()
	p.Rectangle(x, y, w, h)
	r.AppendPath(p)
}

// DrawCircle adds a closed circle to the current path.
func (r *Recorder) DrawCircle(x, y, radius float64) {
	p := paint.NewPath()
	p.Circle(x, y, radius)
	r.AppendPath(p)
}

// DrawText records s anchored at (x, y) in the fill color. The anchor and
// font size go through the current transform. Empty strings are skipped.
func (r *Recorder) DrawText(s string, x, y float64, style TextStyle) {
	if s == "" {
		return
	}
	px, py := r.transform.TransformPoint(x, y)
	style.Size *= r.transform.ScaleFactor()
	r.emit(DrawTextCommand{
		Text:  s,
		X:     px,
		Y:     py,
		Style: style,
		Brush: r.resources.AddBrush(r.fillBrush),
	})
}
