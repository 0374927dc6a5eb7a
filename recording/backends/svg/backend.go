// Package svg provides an SVG 1.1 backend for the recording system.
// The document tree is built with github.com/beevik/etree.
//
// Coordinates are written unchanged as SVG user units; the root element
// declares its width and height in points so one unit is one point.
// Clips become <clipPath> definitions referenced through the clip-path
// attribute, groups become <g id="..."> elements and text becomes <text>
// elements that a browser lays out with its own fonts.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ggplot/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/text"
)

// Compile-time interface checks.
var (
	_ recording.FileBackend = (*Backend)(nil)
)

func init() {
	recording.Register(recording.Format{
		Name:       "svg",
		Extensions: []string{".svg"},
		MediaType:  "image/svg+xml",
		Vector:     true,
		New: func() recording.Backend {
			return NewBackend()
		},
	})
}

// ErrNotEnded is returned by WriteTo before End has been called.
var ErrNotEnded = errors.New("svg: document not finished")

const (
	svgNS    = "http://www.w3.org/2000/svg"
	xlinkNS  = "http://www.w3.org/1999/xlink"
	doctype  = `DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"`
	defStyle = "*{stroke-linejoin: round; stroke-linecap: butt}"
)

// Backend writes recordings as an SVG document.
type Backend struct {
	doc    *etree.Document
	root   *etree.Element
	defs   *etree.Element
	parent *etree.Element

	groups    []*etree.Element
	clip      string
	clipStack []string
	clipCount int

	width, height float64
	ended         bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document of the given size in points.
func (b *Backend) Begin(width, height float64) error {
	if width <= 0 || height <= 0 || math.IsNaN(width) || math.IsNaN(height) {
		return fmt.Errorf("svg: invalid canvas size %vx%v", width, height)
	}

	b.width, b.height = width, height
	b.groups = b.groups[:0]
	b.clip = ""
	b.clipStack = b.clipStack[:0]
	b.clipCount = 0
	b.ended = false

	b.doc = etree.NewDocument()
	b.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="no"`)
	b.doc.CreateDirective(doctype)
	b.doc.CreateComment(" Created with ggplot ")

	b.root = b.doc.CreateElement("svg")
	b.root.CreateAttr("xmlns:xlink", xlinkNS)
	b.root.CreateAttr("width", num(width)+"pt")
	b.root.CreateAttr("height", num(height)+"pt")
	b.root.CreateAttr("viewBox", "0 0 "+num(width)+" "+num(height))
	b.root.CreateAttr("xmlns", svgNS)
	b.root.CreateAttr("version", "1.1")

	b.defs = b.root.CreateElement("defs")
	style := b.defs.CreateElement("style")
	style.CreateAttr("type", "text/css")
	style.SetText(defStyle)

	b.parent = b.root
	return nil
}

// End finishes the document. Groups left open are closed.
func (b *Backend) End() error {
	if b.doc == nil {
		return errors.New("svg: End called before Begin")
	}
	b.groups = b.groups[:0]
	b.parent = b.root
	b.ended = true
	return nil
}

// Save pushes the current clip.
func (b *Backend) Save() {
	b.clipStack = append(b.clipStack, b.clip)
}

// Restore pops the clip pushed by the matching Save.
func (b *Backend) Restore() {
	if len(b.clipStack) == 0 {
		return
	}
	b.clip = b.clipStack[len(b.clipStack)-1]
	b.clipStack = b.clipStack[:len(b.clipStack)-1]
}

// SetClip defines a <clipPath> for path and makes it current. An active
// clip is intersected by referencing it from the new definition.
func (b *Backend) SetClip(path *paint.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.clipCount++
	id := "clip" + strconv.Itoa(b.clipCount)

	cp := b.defs.CreateElement("clipPath")
	cp.CreateAttr("id", id)
	if b.clip != "" {
		cp.CreateAttr("clip-path", "url(#"+b.clip+")")
	}
	p := cp.CreateElement("path")
	p.CreateAttr("d", PathData(path))
	if rule == recording.FillRuleEvenOdd {
		p.CreateAttr("clip-rule", "evenodd")
	}
	b.clip = id
}

// ClearClip removes the current clip.
func (b *Backend) ClearClip() {
	b.clip = ""
}

// BeginGroup opens a <g> element with the given id.
func (b *Backend) BeginGroup(id string) {
	g := b.parent.CreateElement("g")
	if id != "" {
		g.CreateAttr("id", id)
	}
	b.groups = append(b.groups, b.parent)
	b.parent = g
}

// EndGroup closes the innermost <g> element.
func (b *Backend) EndGroup() {
	if len(b.groups) == 0 {
		return
	}
	b.parent = b.groups[len(b.groups)-1]
	b.groups = b.groups[:len(b.groups)-1]
}

// FillPath writes a filled <path>.
func (b *Backend) FillPath(path *paint.Path, brush recording.Brush, rule recording.FillRule) {
	if path.IsEmpty() {
		return
	}
	var style styleBuilder
	style.fill(recording.BrushColor(brush))
	if rule == recording.FillRuleEvenOdd {
		style.add("fill-rule", "evenodd")
	}
	b.drawPath(path, style.String())
}

// StrokePath writes a stroked <path>.
func (b *Backend) StrokePath(path *paint.Path, brush recording.Brush, stroke recording.Stroke) {
	if path.IsEmpty() {
		return
	}
	var style styleBuilder
	style.add("fill", "none")
	style.stroke(recording.BrushColor(brush), stroke)
	b.drawPath(path, style.String())
}

// DrawText writes a <text> element anchored at (x, y).
func (b *Backend) DrawText(s string, x, y float64, ts recording.TextStyle, brush recording.Brush) {
	if s == "" {
		return
	}
	el := b.parent.CreateElement("text")
	el.CreateAttr("x", num(x))
	el.CreateAttr("y", num(y))

	var style styleBuilder
	style.add("font-size", num(ts.Size)+"px")
	if ts.Family != "" {
		style.add("font-family", ts.Family)
	}
	style.fill(recording.BrushColor(brush))
	el.CreateAttr("style", style.String())

	switch ts.Align {
	case recording.AlignCenter:
		el.CreateAttr("text-anchor", "middle")
	case recording.AlignRight:
		el.CreateAttr("text-anchor", "end")
	default:
		el.CreateAttr("text-anchor", "start")
	}
	if text.DirectionOf(s) == text.RightToLeft {
		el.CreateAttr("direction", "rtl")
	}
	if ts.Angle != 0 {
		// SVG rotates clockwise in a y-down space.
		el.CreateAttr("transform", "rotate("+num(-ts.Angle)+" "+num(x)+" "+num(y)+")")
	}
	b.applyClip(el)
	el.SetText(s)
}

// WriteTo writes the document. The output ends with the closing </svg>
// tag and carries no trailing whitespace.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, ErrNotEnded
	}
	var buf bytes.Buffer
	b.doc.Indent(2)
	if _, err := b.doc.WriteTo(&buf); err != nil {
		return 0, fmt.Errorf("svg: encode document: %w", err)
	}
	n, err := w.Write(bytes.TrimRight(buf.Bytes(), " \t\r\n"))
	return int64(n), err
}

// SaveToFile writes the output to the named file.
func (b *Backend) SaveToFile(path string) error {
	return recording.WriteFile(b, path)
}

// Document returns the underlying etree document, or nil before Begin.
func (b *Backend) Document() *etree.Document {
	return b.doc
}

// Width returns the canvas width in points.
func (b *Backend) Width() float64 { return b.width }

// Height returns the canvas height in points.
func (b *Backend) Height() float64 { return b.height }

func (b *Backend) drawPath(path *paint.Path, style string) {
	el := b.parent.CreateElement("path")
	el.CreateAttr("d", PathData(path))
	el.CreateAttr("style", style)
	b.applyClip(el)
}

func (b *Backend) applyClip(el *etree.Element) {
	if b.clip != "" {
		el.CreateAttr("clip-path", "url(#"+b.clip+")")
	}
}

// PathData returns the SVG path data string for p, e.g. "M 0 0 L 10 0 z".
func PathData(p *paint.Path) string {
	var sb strings.Builder
	pt := func(cmd string, pts ...paint.Point) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cmd)
		for _, q := range pts {
			sb.WriteByte(' ')
			sb.WriteString(num(q.X))
			sb.WriteByte(' ')
			sb.WriteString(num(q.Y))
		}
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case paint.MoveTo:
			pt("M", e.Point)
		case paint.LineTo:
			pt("L", e.Point)
		case paint.QuadTo:
			pt("Q", e.Control, e.Point)
		case paint.CubicTo:
			pt("C", e.Control1, e.Control2, e.Point)
		case paint.Close:
			pt("z")
		}
	}
	return sb.String()
}

// num formats v with at most six decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
