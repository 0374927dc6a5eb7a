package svg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/recording"
)

func TestBackendRegistration(t *testing.T) {
	f, err := recording.Lookup("svg")
	if err != nil {
		t.Fatalf("svg format not registered: %v", err)
	}
	if !f.Vector {
		t.Error("svg format should be a vector format")
	}
	if _, ok := f.New().(*Backend); !ok {
		t.Fatal("backend is not *svg.Backend")
	}
	if f, err := recording.LookupPath("plot.SVG"); err != nil || f.Name != "svg" {
		t.Errorf("LookupPath(plot.SVG) = %q, %v", f.Name, err)
	}
}

// render plays a recording into a fresh backend and parses the output.
func render(t *testing.T, rec *recording.Recorder) (string, *etree.Document) {
	t.Helper()
	b := NewBackend()
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buf.Bytes()); err != nil {
		t.Fatalf("output is not well-formed XML: %v\n%s", err, buf.String())
	}
	return buf.String(), doc
}

func TestDocumentHeader(t *testing.T) {
	out, doc := render(t, recording.NewRecorder(460.8, 345.6))

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`) {
		t.Errorf("missing XML declaration:\n%s", out)
	}
	if !strings.Contains(out, "<!DOCTYPE svg PUBLIC") {
		t.Error("missing DOCTYPE")
	}
	if strings.TrimRight(out, " \t\r\n") != out {
		t.Error("output should not end with whitespace")
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Errorf("output should end with </svg>, got %q", out[len(out)-20:])
	}

	root := doc.SelectElement("svg")
	if root == nil {
		t.Fatal("no <svg> root")
	}
	checks := map[string]string{
		"width":   "460.8pt",
		"height":  "345.6pt",
		"viewBox": "0 0 460.8 345.6",
		"version": "1.1",
		"xmlns":   "http://www.w3.org/2000/svg",
	}
	for attr, want := range checks {
		if got := root.SelectAttrValue(attr, ""); got != want {
			t.Errorf("%s = %q, want %q", attr, got, want)
		}
	}
}

func TestFillAndStroke(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.SetFillColor(paint.White)
	rec.DrawRectangle(0, 0, 100, 100)
	rec.Fill()

	rec.SetStrokeColor(paint.Hex("#1f77b4"))
	rec.SetLineWidth(1.5)
	rec.SetLineCap(recording.LineCapSquare)
	rec.SetDash(3, 1.5)
	rec.DrawLine(10, 90, 90, 10)
	rec.Stroke()

	_, doc := render(t, rec)
	paths := doc.FindElements("/svg/path")
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}

	if d := paths[0].SelectAttrValue("d", ""); d != "M 0 0 L 100 0 L 100 100 L 0 100 z" {
		t.Errorf("rect d = %q", d)
	}
	if s := paths[0].SelectAttrValue("style", ""); s != "fill: #ffffff" {
		t.Errorf("fill style = %q", s)
	}

	style := paths[1].SelectAttrValue("style", "")
	for _, want := range []string{
		"fill: none",
		"stroke: #1f77b4",
		"stroke-width: 1.5",
		"stroke-linecap: square",
		"stroke-dasharray: 3,1.5",
	} {
		if !strings.Contains(style, want) {
			t.Errorf("stroke style %q missing %q", style, want)
		}
	}
}

func TestGroupsNest(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	rec.BeginGroup("figure_1")
	rec.BeginGroup("axes_1")
	rec.DrawRectangle(1, 1, 2, 2)
	rec.Fill()
	rec.EndGroup()
	rec.EndGroup()

	_, doc := render(t, rec)
	if doc.FindElement("/svg/g[@id='figure_1']/g[@id='axes_1']/path") == nil {
		t.Error("path should be nested in figure_1/axes_1")
	}
}

func TestClipPath(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.Save()
	rec.DrawRectangle(10, 10, 50, 50)
	rec.Clip()
	rec.DrawRectangle(20, 20, 10, 10)
	rec.Clip()
	rec.DrawLine(0, 0, 100, 100)
	rec.Stroke()
	rec.Restore()
	rec.DrawLine(0, 100, 100, 0)
	rec.Stroke()

	_, doc := render(t, rec)
	clips := doc.FindElements("//defs/clipPath")
	if len(clips) != 2 {
		t.Fatalf("got %d clipPaths, want 2", len(clips))
	}
	if got := clips[1].SelectAttrValue("clip-path", ""); got != "url(#clip1)" {
		t.Errorf("nested clip reference = %q, want url(#clip1)", got)
	}

	paths := doc.FindElements("/svg/path")
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	if got := paths[0].SelectAttrValue("clip-path", ""); got != "url(#clip2)" {
		t.Errorf("clipped path clip-path = %q, want url(#clip2)", got)
	}
	if paths[1].SelectAttr("clip-path") != nil {
		t.Error("path after Restore should not be clipped")
	}
}

func TestText(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.SetFillColor(paint.Black)
	rec.DrawText("x < y & z", 50, 90, recording.TextStyle{Size: 10, Family: "Go, sans-serif", Align: recording.AlignCenter})
	rec.DrawText("values", 10, 50, recording.TextStyle{Size: 10, Align: recording.AlignRight, Angle: 90})
	rec.DrawText("שלום", 10, 10, recording.TextStyle{Size: 10})

	_, doc := render(t, rec)
	texts := doc.FindElements("/svg/text")
	if len(texts) != 3 {
		t.Fatalf("got %d texts, want 3", len(texts))
	}

	if texts[0].Text() != "x < y & z" {
		t.Errorf("text = %q, escaping lost", texts[0].Text())
	}
	if got := texts[0].SelectAttrValue("text-anchor", ""); got != "middle" {
		t.Errorf("text-anchor = %q, want middle", got)
	}
	if style := texts[0].SelectAttrValue("style", ""); !strings.Contains(style, "font-size: 10px") ||
		!strings.Contains(style, "font-family: Go, sans-serif") {
		t.Errorf("text style = %q", style)
	}

	if got := texts[1].SelectAttrValue("transform", ""); got != "rotate(-90 10 50)" {
		t.Errorf("transform = %q, want rotate(-90 10 50)", got)
	}
	if got := texts[1].SelectAttrValue("text-anchor", ""); got != "end" {
		t.Errorf("text-anchor = %q, want end", got)
	}

	if got := texts[2].SelectAttrValue("direction", ""); got != "rtl" {
		t.Errorf("direction = %q, want rtl", got)
	}
	if texts[0].SelectAttr("direction") != nil {
		t.Error("latin text should not carry a direction attribute")
	}
}

func TestWriteToBeforeEnd(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotEnded) {
		t.Errorf("err = %v, want ErrNotEnded", err)
	}
}

func TestBeginInvalidSize(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestPathData(t *testing.T) {
	p := paint.NewPath()
	p.MoveTo(0.1234567, -0)
	p.QuadraticTo(1, 2, 3, 4)
	p.CubicTo(1, 1, 2, 2, 3, 3)
	p.Close()

	want := "M 0.123457 0 Q 1 2 3 4 C 1 1 2 2 3 3 z"
	if got := PathData(p); got != want {
		t.Errorf("PathData = %q, want %q", got, want)
	}
}

func TestSaveToFile(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(20, 10); err != nil {
		t.Fatal(err)
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("saved file is not XML: %v", err)
	}
	if got := doc.Root().SelectAttrValue("width", ""); got != "20pt" {
		t.Errorf("width = %q, want 20pt", got)
	}
}
