package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// BuiltinShaper sums per-glyph advances and pair kerning from the sfnt
// tables. It performs no substitution and no reordering.
type BuiltinShaper struct{}

// Advance implements Shaper.
func (BuiltinShaper) Advance(s string, face *Face) float64 {
	if s == "" || face == nil {
		return 0
	}
	f := face.source.font
	ppem := toFixed(face.size)

	var buf sfnt.Buffer
	var total float64
	var prev sfnt.GlyphIndex
	havePrev := false
	for _, r := range s {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		if havePrev {
			if k, err := f.Kern(&buf, prev, idx, ppem, font.HintingNone); err == nil {
				total += fromFixed(k)
			}
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err == nil {
			total += fromFixed(adv)
		}
		prev, havePrev = idx, true
	}
	return total
}
