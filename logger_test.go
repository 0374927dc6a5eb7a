package ggplot

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs installs a debug-level text logger for the test and returns
// its output buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestDiscardHandler(t *testing.T) {
	ctx := context.Background()
	var h slog.Handler = discard{}
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelError} {
		if h.Enabled(ctx, lvl) {
			t.Errorf("Enabled(%v) = true", lvl)
		}
	}
	if err := h.Handle(ctx, slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
	if h.WithAttrs(nil) != h || h.WithGroup("g") != h {
		t.Error("derived handlers should still discard")
	}
}

func TestLoggerSilentByDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)
	Logger().Info("hello", "n", 1)
	if !strings.Contains(buf.String(), "msg=hello n=1") {
		t.Errorf("log output = %q", buf.String())
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should install a disabled logger")
	}
}

func TestRenderLogsDebug(t *testing.T) {
	buf := captureLogs(t)
	if err := MustFigure().Render(&bytes.Buffer{}, "svg"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "figure rendered") || !strings.Contains(out, "format=svg") {
		t.Errorf("no render record in %q", out)
	}
}

func TestLoggerRace(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkDisabledDebug(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
