package ggplot

import (
	"errors"
	"testing"
)

func TestShowWithoutDisplay(t *testing.T) {
	orig := CurrentDisplay()
	t.Cleanup(func() { SetDisplay(orig) })

	SetDisplay(nil)
	if err := MustFigure().Show(); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("err = %v, want ErrNoDisplay", err)
	}
}

func TestShowUsesInstalledDisplay(t *testing.T) {
	orig := CurrentDisplay()
	t.Cleanup(func() { SetDisplay(orig) })

	var got *Figure
	SetDisplay(DisplayFunc(func(fig *Figure) error {
		got = fig
		return nil
	}))

	fig := MustFigure()
	if err := fig.Show(); err != nil {
		t.Fatal(err)
	}
	if got != fig {
		t.Error("the display did not receive the figure")
	}
}

func TestShowReplacesDisplay(t *testing.T) {
	orig := CurrentDisplay()
	t.Cleanup(func() { SetDisplay(orig) })

	errFirst := errors.New("first")
	first := 0
	SetDisplay(DisplayFunc(func(*Figure) error { first++; return errFirst }))
	second := 0
	SetDisplay(DisplayFunc(func(*Figure) error { second++; return nil }))

	if err := MustFigure().Show(); err != nil {
		t.Fatal(err)
	}
	if first != 0 || second != 1 {
		t.Errorf("calls: first %d, second %d", first, second)
	}
}
