package ggplot

import "sync/atomic"

// Display shows a figure to the user. It is the pluggable replacement for
// an interactive window: whatever "showing" means for the process (printing
// a document, writing a file, sending it to a notebook host) lives behind
// this interface.
type Display interface {
	Show(fig *Figure) error
}

// DisplayFunc adapts a function to the Display interface.
type DisplayFunc func(fig *Figure) error

// Show implements Display.
func (fn DisplayFunc) Show(fig *Figure) error { return fn(fig) }

// displayBox lets atomic.Pointer hold an interface value.
type displayBox struct {
	d Display
}

var displayPtr atomic.Pointer[displayBox]

// SetDisplay installs d as the process-wide display used by Figure.Show.
// Pass nil to remove the installed display.
//
// SetDisplay is safe for concurrent use.
func SetDisplay(d Display) {
	if d == nil {
		displayPtr.Store(nil)
		return
	}
	displayPtr.Store(&displayBox{d: d})
}

// CurrentDisplay returns the installed display, or nil.
func CurrentDisplay() Display {
	if b := displayPtr.Load(); b != nil {
		return b.d
	}
	return nil
}

// Show hands the figure to the installed display. Without one it returns
// ErrNoDisplay; there is no window fallback.
func (f *Figure) Show() error {
	d := CurrentDisplay()
	if d == nil {
		return ErrNoDisplay
	}
	return d.Show(f)
}
