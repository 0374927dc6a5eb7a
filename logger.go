package ggplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers never
// build the message in the first place.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var logger atomic.Pointer[slog.Logger]

func init() { SetLogger(nil) }

// SetLogger routes ggplot's diagnostics to l. ggplot is silent until this
// is called, and passing nil silences it again. It may be called while
// other goroutines are logging.
//
// Levels:
//   - Debug: layout and render details such as sizes, formats and counts
//   - Info: displays installed and files written
//   - Warn: recoverable problems, e.g. a tight layout that did not fit
//
// For example:
//
//	ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger is the logger set by SetLogger. Subpackages log through it too.
func Logger() *slog.Logger { return logger.Load() }
