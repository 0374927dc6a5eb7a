package paint

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"hex6", "#ff0000", Red},
		{"hex6 no hash", "0000ff", Blue},
		{"hex3", "#fff", White},
		{"hex8 alpha", "#00000080", RGBA{A: 128.0 / 255}},
		{"letter", "k", Black},
		{"css name", "White", White},
		{"tab palette", "tab:orange", Hex("#ff7f0e")},
		{"cycle alias", "C1", Hex("#ff7f0e")},
		{"none", "none", Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestHexFallsBackToBlack(t *testing.T) {
	if got := Hex("zz"); got != Black {
		t.Errorf("Hex(zz) = %+v, want Black", got)
	}
}

func TestHexString(t *testing.T) {
	if got := ColorCycle(0).HexString(); got != "#1f77b4" {
		t.Errorf("HexString() = %q, want #1f77b4", got)
	}
	if got := (RGBA{R: 2, G: -1, B: 0.5, A: 1}).HexString(); got != "#ff0080" {
		t.Errorf("HexString() clamps: got %q", got)
	}
}

func TestColorCycleWraps(t *testing.T) {
	if ColorCycle(10) != ColorCycle(0) {
		t.Error("ColorCycle(10) should wrap to ColorCycle(0)")
	}
	if ColorCycle(-3) != ColorCycle(3) {
		t.Error("negative index should be folded")
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	r, g, b, a := RGBA{R: 1, A: 0.5}.RGBA()
	if a != 0x7fff || r != 0x7fff || g != 0 || b != 0 {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}
