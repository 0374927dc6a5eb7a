package svg

import (
	"strings"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/recording"
)

// styleBuilder accumulates CSS declarations for a style attribute.
type styleBuilder struct {
	sb strings.Builder
}

func (s *styleBuilder) add(prop, value string) {
	if s.sb.Len() > 0 {
		s.sb.WriteString("; ")
	}
	s.sb.WriteString(prop)
	s.sb.WriteString(": ")
	s.sb.WriteString(value)
}

func (s *styleBuilder) fill(c paint.RGBA) {
	s.add("fill", c.HexString())
	if c.A < 1 {
		s.add("fill-opacity", num(c.A))
	}
}

func (s *styleBuilder) stroke(c paint.RGBA, st recording.Stroke) {
	s.add("stroke", c.HexString())
	if c.A < 1 {
		s.add("stroke-opacity", num(c.A))
	}
	s.add("stroke-width", num(st.Width))
	s.add("stroke-linecap", lineCapName(st.Cap))
	s.add("stroke-linejoin", lineJoinName(st.Join))
	if st.Join == recording.LineJoinMiter && st.MiterLimit > 0 {
		s.add("stroke-miterlimit", num(st.MiterLimit))
	}
	if len(st.DashPattern) > 0 {
		parts := make([]string, len(st.DashPattern))
		for i, d := range st.DashPattern {
			parts[i] = num(d)
		}
		s.add("stroke-dasharray", strings.Join(parts, ","))
		s.add("stroke-dashoffset", num(st.DashOffset))
	}
}

func (s *styleBuilder) String() string {
	return s.sb.String()
}

func lineCapName(c recording.LineCap) string {
	switch c {
	case recording.LineCapRound:
		return "round"
	case recording.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func lineJoinName(j recording.LineJoin) string {
	switch j {
	case recording.LineJoinRound:
		return "round"
	case recording.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}
