package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base writing direction of a string.
type Direction uint8

const (
	// LeftToRight is the default direction.
	LeftToRight Direction = iota
	// RightToLeft is used for Arabic, Hebrew and similar scripts.
	RightToLeft
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// DirectionOf returns the paragraph direction of s: the direction of its
// first strong character, or LeftToRight when it has none.
func DirectionOf(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return LeftToRight
}
