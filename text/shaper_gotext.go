package text

import (
	"bytes"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/ggplot/internal/cache"
)

// GoTextShaper shapes runs with the HarfBuzz port in go-text/typesetting,
// which accounts for kerning, ligatures and right-to-left scripts.
// It is safe for concurrent use.
type GoTextShaper struct {
	// HarfbuzzShaper keeps scratch buffers, so each call borrows one.
	shapers sync.Pool
	// Parsed fonts are read-only and shared; a Face is made per call.
	fonts *cache.Cache[*Source, parsedFont]
}

type parsedFont struct {
	f   *font.Font
	err error
}

// NewGoTextShaper returns a ready GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shapers: sync.Pool{New: func() any { return new(shaping.HarfbuzzShaper) }},
		fonts:   cache.New[*Source, parsedFont](64),
	}
}

// Advance implements Shaper. Fonts go-text cannot parse are measured by
// BuiltinShaper instead.
func (s *GoTextShaper) Advance(str string, face *Face) float64 {
	if str == "" || face == nil {
		return 0
	}
	pf := s.fonts.GetOrCreate(face.source, func() parsedFont {
		ff, err := font.ParseTTF(bytes.NewReader(face.source.data))
		if err != nil {
			return parsedFont{err: err}
		}
		return parsedFont{f: ff.Font}
	})
	if pf.err != nil {
		return BuiltinShaper{}.Advance(str, face)
	}

	runes := []rune(str)
	in := shaping.Input{
		Text:      runes,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(pf.f),
		Size:      toFixed(face.size),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}
	if DirectionOf(str) == RightToLeft {
		in.Direction = di.DirectionRTL
	}

	hb := s.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	s.shapers.Put(hb)

	var w float64
	for _, g := range out.Glyphs {
		w += fromFixed(g.Advance)
	}
	return w
}

// scriptOf is the script of the first non-space rune, Latin if none.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}
