package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color specification cannot be parsed.
var ErrInvalidColor = errors.New("paint: invalid color")

// RGBA is a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color with premultiplied 16-bit components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	return r, g, b, a
}

// NRGBA converts the color to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// HexString formats the opaque part of the color as "#rrggbb".
// Alpha is dropped; vector backends emit it as a separate opacity.
func (c RGBA) HexString() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// IsTransparent reports whether the color has no visible contribution.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// FromColor converts any image/color value.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA { return RGBA{r, g, b, 1} }

// Hex creates a color from a hex string and falls back to opaque black when
// the string is malformed. Use [ParseColor] to observe the error instead.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
func Hex(hex string) RGBA {
	c, err := parseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseColor parses a hex string ("#1f77b4") or a color name. Names cover
// the single-letter shorthands ("r", "k"), the CSS basics ("red", "gray")
// and the tab10 palette ("tab:blue", also addressable as "C0".."C9").
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 2 && (s[0] == 'C' || s[0] == 'c') && s[1] >= '0' && s[1] <= '9' {
		return ColorCycle(int(s[1] - '0')), nil
	}
	return parseHex(s)
}

// parseHex accepts RGB, RGBA, RRGGBB and RRGGBBAA with an optional '#'.
// Short forms double each digit, so "f80" is "ff8800".
func parseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 || len(h) == 4 {
		var long strings.Builder
		for _, d := range h {
			long.WriteRune(d)
			long.WriteRune(d)
		}
		h = long.String()
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if len(h) != 8 || err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	byteAt := func(shift uint) float64 { return float64(v>>shift&0xff) / 255 }
	return RGBA{R: byteAt(24), G: byteAt(16), B: byteAt(8), A: byteAt(0)}, nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 0.5, 0)
	Blue        = RGB(0, 0, 1)
	Gray        = RGB(0.5, 0.5, 0.5)
	LightGray   = Hex("#b0b0b0")
	Transparent = RGBA{}
)

// tab10 is the default categorical cycle, in order.
var tab10 = [...]RGBA{
	Hex("#1f77b4"), // blue
	Hex("#ff7f0e"), // orange
	Hex("#2ca02c"), // green
	Hex("#d62728"), // red
	Hex("#9467bd"), // purple
	Hex("#8c564b"), // brown
	Hex("#e377c2"), // pink
	Hex("#7f7f7f"), // gray
	Hex("#bcbd22"), // olive
	Hex("#17becf"), // cyan
}

// ColorCycle returns the i-th color of the default series cycle.
// The cycle wraps, so any non-negative index is valid.
func ColorCycle(i int) RGBA {
	if i < 0 {
		i = -i
	}
	return tab10[i%len(tab10)]
}

var namedColors = map[string]RGBA{
	"b": Blue, "g": Green, "r": Red,
	"c": RGB(0, 0.75, 0.75), "m": RGB(0.75, 0, 0.75), "y": RGB(0.75, 0.75, 0),
	"k": Black, "w": White,

	"black": Black, "white": White, "red": Red, "green": Green, "blue": Blue,
	"gray": Gray, "grey": Gray, "lightgray": Hex("#d3d3d3"),
	"orange": Hex("#ffa500"), "purple": Hex("#800080"), "none": Transparent,

	"tab:blue": tab10[0], "tab:orange": tab10[1], "tab:green": tab10[2],
	"tab:red": tab10[3], "tab:purple": tab10[4], "tab:brown": tab10[5],
	"tab:pink": tab10[6], "tab:gray": tab10[7], "tab:olive": tab10[8],
	"tab:cyan": tab10[9],
}
