package figspec

import (
	"fmt"

	"github.com/gogpu/ggplot"
)

// Build creates the described figure.
func (s *Spec) Build() (*ggplot.Figure, error) {
	var opts []ggplot.FigureOption
	switch len(s.Size) {
	case 0:
	case 2:
		opts = append(opts, ggplot.WithSize(s.Size[0], s.Size[1]))
	default:
		return nil, fieldErr("size", "want [width, height], got %d values", len(s.Size))
	}
	if s.DPI != 0 {
		opts = append(opts, ggplot.WithDPI(s.DPI))
	}
	fig, err := ggplot.NewFigure(opts...)
	if err != nil {
		return nil, &FieldError{Field: "size", Err: err}
	}
	fig.SetSuptitle(s.Suptitle)

	rows, cols := s.Layout.Rows, s.Layout.Cols
	switch {
	case rows == 0 && cols == 0:
		rows, cols = max(len(s.Axes), 1), 1
	case rows == 0 && cols > 0:
		rows = max((len(s.Axes)+cols-1)/cols, 1)
	case cols == 0 && rows > 0:
		cols = max((len(s.Axes)+rows-1)/rows, 1)
	}
	if rows < 1 || cols < 1 || len(s.Axes) > rows*cols {
		return nil, fieldErr("layout", "%d axes do not fit a %dx%d grid", len(s.Axes), rows, cols)
	}

	for i := range s.Axes {
		field := fmt.Sprintf("axes[%d]", i)
		ax, err := fig.AddSubplot(rows, cols, i+1)
		if err != nil {
			return nil, &FieldError{Field: field, Err: err}
		}
		if err := s.Axes[i].apply(ax, field); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

func (a *AxesSpec) apply(ax *ggplot.Axes, field string) error {
	ax.SetTitle(a.Title)
	ax.SetXLabel(a.XLabel)
	ax.SetYLabel(a.YLabel)
	ax.Grid(a.Grid)
	ax.Legend(a.Legend)

	if err := limits(a.XLim, ax.SetXLim, field+".xlim"); err != nil {
		return err
	}
	if err := limits(a.YLim, ax.SetYLim, field+".ylim"); err != nil {
		return err
	}

	for i := range a.Series {
		if err := a.Series[i].add(ax, fmt.Sprintf("%s.series[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

func limits(lim []float64, set func(lo, hi float64) error, field string) error {
	switch len(lim) {
	case 0:
		return nil
	case 2:
		if err := set(lim[0], lim[1]); err != nil {
			return &FieldError{Field: field, Err: err}
		}
		return nil
	default:
		return fieldErr(field, "want [min, max], got %d values", len(lim))
	}
}

func (s *SeriesSpec) add(ax *ggplot.Axes, field string) error {
	var opts []ggplot.SeriesOption
	if s.Label != "" {
		opts = append(opts, ggplot.WithLabel(s.Label))
	}
	if s.Color != "" {
		c, err := ggplot.ParseColor(s.Color)
		if err != nil {
			return &FieldError{Field: field + ".color", Err: err}
		}
		opts = append(opts, ggplot.WithColor(c))
	}
	if s.Width != 0 {
		if s.Kind == "bar" {
			opts = append(opts, ggplot.WithBarWidth(s.Width))
		} else {
			opts = append(opts, ggplot.WithLineWidth(s.Width))
		}
	}
	if len(s.Dash) > 0 {
		opts = append(opts, ggplot.WithDash(s.Dash...))
	}
	if s.Marker != "" {
		m, ok := ggplot.ParseMarker(s.Marker)
		if !ok {
			return fieldErr(field+".marker", "unknown marker %q", s.Marker)
		}
		opts = append(opts, ggplot.WithMarker(m))
	}
	if s.MarkerSize != 0 {
		opts = append(opts, ggplot.WithMarkerSize(s.MarkerSize))
	}

	var err error
	switch s.Kind {
	case "", "line":
		_, err = ax.Plot(s.X, s.Y, opts...)
	case "scatter":
		_, err = ax.Scatter(s.X, s.Y, opts...)
	case "bar":
		_, err = ax.Bar(s.X, s.Y, opts...)
	default:
		return fieldErr(field+".kind", "unknown series kind %q", s.Kind)
	}
	if err != nil {
		return &FieldError{Field: field, Err: err}
	}
	return nil
}
