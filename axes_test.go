package ggplot

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestAutoLimits(t *testing.T) {
	tests := []struct {
		name           string
		lo, hi         float64
		ok, sticky     bool
		wantLo, wantHi float64
	}{
		{"no data", 0, 0, false, false, 0, 1},
		{"unit range", 0, 1, true, false, -0.05, 1.05},
		{"single point at zero", 0, 0, true, false, -0.055, 0.055},
		{"single point", 10, 10, true, false, 9.45, 10.55},
		{"sticky zero bottom", 0, 4, true, true, 0, 4.2},
		{"sticky zero top", -4, 0, true, true, -4.2, 0},
		{"sticky without zero", 1, 3, true, true, 0.9, 3.1},
		{"denormal point", 5e-324, 5e-324, true, false, -0.055, 0.055},
		{"near zero point", 1e-300, 1e-300, true, false, -0.055, 0.055},
		{"full float range", -math.MaxFloat64, math.MaxFloat64, true, false, -math.MaxFloat64, math.MaxFloat64},
		{"huge single point", math.MaxFloat64, math.MaxFloat64, true, false, 0.9475 * math.MaxFloat64, math.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := autoLimits(tt.lo, tt.hi, tt.ok, tt.sticky)
			if !finite(lo) || !finite(hi) || !(lo < hi) {
				t.Fatalf("autoLimits(%v, %v) = [%v, %v], want a finite non-empty range", tt.lo, tt.hi, lo, hi)
			}
			if !approx(lo, tt.wantLo) || !approx(hi, tt.wantHi) {
				t.Errorf("autoLimits(%v, %v) = [%v, %v], want [%v, %v]", tt.lo, tt.hi, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestAxesLimitsFromData(t *testing.T) {
	ax := MustFigure().Gca()
	if _, err := ax.Plot([]float64{0, 1, math.NaN(), 2}, []float64{0, 1, 5, math.Inf(1)}); err != nil {
		t.Fatal(err)
	}
	lo, hi := ax.XLim()
	if !approx(lo, -0.05) || !approx(hi, 1.05) {
		t.Errorf("XLim = [%v, %v], non-finite points should be ignored", lo, hi)
	}
	lo, hi = ax.YLim()
	if !approx(lo, -0.05) || !approx(hi, 1.05) {
		t.Errorf("YLim = [%v, %v]", lo, hi)
	}
}

func TestAxesBarLimits(t *testing.T) {
	ax := MustFigure().Gca()
	if _, err := ax.Bar([]float64{1, 2, 3}, []float64{2, 4, 3}); err != nil {
		t.Fatal(err)
	}
	lo, hi := ax.YLim()
	if lo != 0 || !approx(hi, 4.2) {
		t.Errorf("YLim = [%v, %v], want [0, 4.2]", lo, hi)
	}
	lo, hi = ax.XLim()
	// bars span [0.6, 3.4]
	if !approx(lo, 0.6-0.14) || !approx(hi, 3.4+0.14) {
		t.Errorf("XLim = [%v, %v]", lo, hi)
	}
}

func TestAxesExplicitLimits(t *testing.T) {
	ax := MustFigure().Gca()
	if err := ax.SetXLim(5, -5); err != nil {
		t.Fatalf("inverted limits should be allowed: %v", err)
	}
	if lo, hi := ax.XLim(); lo != 5 || hi != -5 {
		t.Errorf("XLim = [%v, %v]", lo, hi)
	}
	for _, lim := range [][2]float64{{1, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		if err := ax.SetYLim(lim[0], lim[1]); !errors.Is(err, ErrInvalidLimits) {
			t.Errorf("SetYLim(%v, %v) err = %v, want ErrInvalidLimits", lim[0], lim[1], err)
		}
	}
	ax.AutoScale()
	if lo, hi := ax.XLim(); lo != 0 || hi != 1 {
		t.Errorf("AutoScale on empty axes: XLim = [%v, %v], want [0, 1]", lo, hi)
	}
}

func TestAxesLengthMismatch(t *testing.T) {
	ax := MustFigure().Gca()
	if _, err := ax.Plot([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Plot err = %v", err)
	}
	if _, err := ax.Scatter([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Scatter err = %v", err)
	}
	if _, err := ax.Bar(nil, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Bar err = %v", err)
	}
}

func TestAxesColorCycle(t *testing.T) {
	ax := MustFigure().Gca()
	l0, _ := ax.Plot([]float64{0}, []float64{0})
	l1, _ := ax.Plot([]float64{0}, []float64{0}, WithColor(Red))
	l2, _ := ax.Scatter([]float64{0}, []float64{0}, WithLabel("pts"))
	b, _ := ax.Bar([]float64{0}, []float64{1})

	if l0.Color() != ColorCycle(0) {
		t.Errorf("first series color = %v, want C0", l0.Color())
	}
	if l1.Color() != Red {
		t.Errorf("explicit color = %v, want red", l1.Color())
	}
	if l2.Color() != ColorCycle(1) {
		t.Errorf("an explicit color should not consume a cycle entry: got %v", l2.Color())
	}
	if b.Color() != ColorCycle(2) {
		t.Errorf("bar color = %v, want C2", b.Color())
	}
	if l2.Label() != "pts" || l2.Len() != 1 {
		t.Errorf("Label/Len = %q/%d", l2.Label(), l2.Len())
	}
}

func TestPlotCopiesInput(t *testing.T) {
	ax := MustFigure().Gca()
	xs := []float64{0, 1}
	ys := []float64{0, 1}
	if _, err := ax.Plot(xs, ys); err != nil {
		t.Fatal(err)
	}
	xs[1] = 100
	if _, hi := ax.XLim(); hi > 2 {
		t.Errorf("mutating the caller's slice changed the axes: XLim hi = %v", hi)
	}
}

func TestParseMarker(t *testing.T) {
	tests := []struct {
		in   string
		want Marker
		ok   bool
	}{
		{"", MarkerNone, true},
		{"none", MarkerNone, true},
		{"o", MarkerCircle, true},
		{"circle", MarkerCircle, true},
		{"s", MarkerSquare, true},
		{"triangle", MarkerNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseMarker(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMarker(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if MarkerCircle.String() != "o" || MarkerSquare.String() != "s" || MarkerNone.String() != "" {
		t.Error("Marker.String mismatch")
	}
}
