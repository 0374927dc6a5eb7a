package ggplot

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// Tick is a labeled position on an axis.
type Tick struct {
	Value float64
	Label string
}

// Ticker chooses tick positions for an axis range.
type Ticker interface {
	// Ticks returns the ticks inside [min, max].
	Ticks(min, max float64) []Tick
}

// DefaultTicker places ticks at "nice" multiples using gonum's
// plot.DefaultTicks. Only major ticks are kept. Ranges that are not finite
// get no ticks.
type DefaultTicker struct{}

// hugeTicks is the magnitude above which ticks are chosen on a range scaled
// down by hugeTicks, so gonum never sees a span that overflows.
const hugeTicks = 1e300

// Ticks implements Ticker.
func (DefaultTicker) Ticks(min, max float64) []Tick {
	if !finite(min) || !finite(max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return nil
	}
	scale := 1.0
	if math.Max(math.Abs(min), math.Abs(max)) > hugeTicks {
		scale = hugeTicks
	}
	lo, hi := min/scale, max/scale
	eps := (hi - lo) * 1e-9
	var out []Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() || t.Value < lo-eps || t.Value > hi+eps {
			continue
		}
		v, label := t.Value*scale, t.Label
		if !finite(v) {
			continue
		}
		if scale != 1 {
			label = strconv.FormatFloat(v, 'g', 6, 64)
		}
		out = append(out, Tick{Value: v, Label: tickLabel(label)})
	}
	return out
}

// FixedTicker returns its ticks that fall inside the range.
type FixedTicker []Tick

// Ticks implements Ticker.
func (f FixedTicker) Ticks(min, max float64) []Tick {
	if min > max {
		min, max = max, min
	}
	var out []Tick
	for _, t := range f {
		if t.Value >= min && t.Value <= max {
			out = append(out, t)
		}
	}
	return out
}

// tickLabel normalizes "-0" to "0" and uses the typographic minus sign for
// negative values.
func tickLabel(s string) string {
	if strings.HasPrefix(s, "-") {
		if strings.Trim(s[1:], "0.") == "" {
			return s[1:]
		}
		return "−" + s[1:]
	}
	return s
}
