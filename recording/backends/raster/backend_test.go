package raster

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/recording"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("png") {
		t.Fatal("png backend not registered")
	}

	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("failed to create png backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}

	f, _ := recording.Lookup("png")
	if f.Vector {
		t.Error("png should not be a vector format")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()
	if backend.Image() != nil {
		t.Error("Image() should be nil before Begin")
	}

	if err := backend.Begin(99.5, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 100 || backend.Height() != 100 {
		t.Errorf("size = %dx%d, want 100x100", backend.Width(), backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	bounds := backend.Image().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("Image bounds = %v, want 100x100", bounds)
	}
}

func TestBeginInvalidSize(t *testing.T) {
	for _, size := range [][2]float64{{0, 10}, {10, -1}} {
		if err := NewBackend().Begin(size[0], size[1]); err == nil {
			t.Errorf("Begin(%v, %v) should fail", size[0], size[1])
		}
	}
}

func rgbaAt(t *testing.T, b *Backend, x, y int) (r, g, bl, a uint8) {
	t.Helper()
	img, ok := b.Image().(*image.RGBA)
	if !ok {
		t.Fatal("expected *image.RGBA")
	}
	c := img.RGBAAt(x, y)
	return c.R, c.G, c.B, c.A
}

func TestBackendFillPath(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatal(err)
	}

	path := paint.NewPath()
	path.MoveTo(50, 10)
	path.LineTo(90, 90)
	path.LineTo(10, 90)
	path.Close()
	backend.FillPath(path, recording.NewSolidBrush(paint.Blue), recording.FillRuleNonZero)

	if r, g, b, _ := rgbaAt(t, backend, 50, 60); b < 200 || r > 50 || g > 50 {
		t.Errorf("pixel at (50,60) = %d,%d,%d, expected blue", r, g, b)
	}
	if _, _, _, a := rgbaAt(t, backend, 5, 5); a != 0 {
		t.Errorf("pixel outside triangle has alpha %d, want 0", a)
	}
}

func TestBackendStrokePath(t *testing.T) {
	tests := []struct {
		name   string
		stroke recording.Stroke
		onLine [2]int
		offCap [2]int
		capOn  bool
	}{
		{
			name:   "butt",
			stroke: recording.Stroke{Width: 6, Cap: recording.LineCapButt},
			onLine: [2]int{50, 50},
			offCap: [2]int{8, 50},
		},
		{
			name:   "square",
			stroke: recording.Stroke{Width: 6, Cap: recording.LineCapSquare},
			onLine: [2]int{50, 50},
			offCap: [2]int{8, 50},
			capOn:  true,
		},
		{
			name:   "round",
			stroke: recording.Stroke{Width: 6, Cap: recording.LineCapRound},
			onLine: [2]int{50, 50},
			offCap: [2]int{8, 50},
			capOn:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := NewBackend()
			if err := backend.Begin(100, 100); err != nil {
				t.Fatal(err)
			}
			path := paint.NewPath()
			path.MoveTo(10, 50)
			path.LineTo(90, 50)
			backend.StrokePath(path, recording.NewSolidBrush(paint.Black), tt.stroke)

			if _, _, _, a := rgbaAt(t, backend, tt.onLine[0], tt.onLine[1]); a < 250 {
				t.Errorf("alpha on line = %d, want opaque", a)
			}
			_, _, _, a := rgbaAt(t, backend, tt.offCap[0], tt.offCap[1])
			if tt.capOn && a < 200 {
				t.Errorf("alpha in cap = %d, want covered", a)
			}
			if !tt.capOn && a != 0 {
				t.Errorf("alpha beyond butt end = %d, want 0", a)
			}
			if _, _, _, a := rgbaAt(t, backend, 50, 40); a != 0 {
				t.Errorf("alpha away from line = %d, want 0", a)
			}
		})
	}
}

func TestBackendDashedStroke(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatal(err)
	}

	path := paint.NewPath()
	path.MoveTo(10, 50)
	path.LineTo(90, 50)
	stroke := recording.Stroke{
		Width:       3.0,
		Cap:         recording.LineCapButt,
		Join:        recording.LineJoinMiter,
		MiterLimit:  4.0,
		DashPattern: []float64{10, 5},
	}
	backend.StrokePath(path, recording.NewSolidBrush(paint.Black), stroke)

	// First dash covers x 10..20, the gap 20..25.
	if _, _, _, a := rgbaAt(t, backend, 15, 50); a == 0 {
		t.Error("expected ink inside first dash")
	}
	if _, _, _, a := rgbaAt(t, backend, 22, 50); a != 0 {
		t.Errorf("alpha inside gap = %d, want 0", a)
	}
}

func TestClipSaveRestore(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	clip := paint.NewPath()
	clip.Rectangle(0, 0, 50, 100)
	full := paint.NewPath()
	full.Rectangle(0, 0, 100, 100)

	backend.Save()
	backend.SetClip(clip, recording.FillRuleNonZero)
	backend.FillPath(full, recording.NewSolidBrush(paint.Red), recording.FillRuleNonZero)
	backend.Restore()

	if r, _, _, _ := rgbaAt(t, backend, 25, 50); r < 250 {
		t.Errorf("inside clip red = %d, want 255", r)
	}
	if _, _, _, a := rgbaAt(t, backend, 75, 50); a != 0 {
		t.Errorf("outside clip alpha = %d, want 0", a)
	}

	backend.FillPath(full, recording.NewSolidBrush(paint.Blue), recording.FillRuleNonZero)
	if _, _, b, _ := rgbaAt(t, backend, 75, 50); b < 250 {
		t.Errorf("after Restore blue = %d, want 255", b)
	}
}

func TestDrawText(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(200, 100); err != nil {
		t.Fatal(err)
	}
	backend.DrawText("HHHH", 100, 60, recording.TextStyle{Size: 30, Align: recording.AlignCenter}, recording.NewSolidBrush(paint.Black))

	img := backend.Image().(*image.RGBA)
	var minX, maxX = 200, 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A > 128 {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	if maxX <= minX {
		t.Fatal("no text was drawn")
	}
	if mid := (minX + maxX) / 2; mid < 95 || mid > 105 {
		t.Errorf("centered text spans %d..%d, midpoint should be near 100", minX, maxX)
	}
}

func TestDrawTextRotated(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 200); err != nil {
		t.Fatal(err)
	}
	backend.DrawText("HHHHHH", 50, 100, recording.TextStyle{Size: 20, Align: recording.AlignCenter, Angle: 90}, recording.NewSolidBrush(paint.Black))

	img := backend.Image().(*image.RGBA)
	minY, maxY, minX, maxX := 200, 0, 100, 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).A > 128 {
				minY, maxY = min(minY, y), max(maxY, y)
				minX, maxX = min(minX, x), max(maxX, x)
			}
		}
	}
	if maxY-minY <= maxX-minX {
		t.Errorf("rotated text should be taller than wide: x %d..%d, y %d..%d", minX, maxX, minY, maxY)
	}
	// Glyph tops face left after a counter-clockwise turn.
	if maxX > 52 {
		t.Errorf("rotated text extends to x=%d, want it left of the anchor", maxX)
	}
}

func TestWriteToPNG(t *testing.T) {
	backend := NewBackend()
	if _, err := backend.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo before Begin should fail")
	}

	if err := backend.Begin(50, 40); err != nil {
		t.Fatal(err)
	}
	full := paint.NewPath()
	full.Rectangle(0, 0, 50, 40)
	backend.FillPath(full, recording.NewSolidBrush(paint.Red), recording.FillRuleNonZero)
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d bytes", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("decoded bounds = %v, want 50x40", b)
	}
}

func TestRecordingPlaybackViaRegistry(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.SetFillColor(paint.Green)
	rec.DrawCircle(50, 50, 30)
	rec.Fill()

	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	rb := backend.(*Backend)
	if _, g, _, _ := rgbaAt(t, rb, 50, 50); g < 120 {
		t.Errorf("center green = %d, want the circle color", g)
	}
	if _, _, _, a := rgbaAt(t, rb, 5, 5); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestSaveToFile(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(8, 6); err != nil {
		t.Fatal(err)
	}
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := backend.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("saved file is not a PNG: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 6 {
		t.Errorf("saved size = %dx%d, want 8x6", cfg.Width, cfg.Height)
	}

	if err := backend.SaveToFile(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SaveToFile into a missing directory should fail")
	}
}
