package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file.
// One Source can create multiple Face instances at different sizes.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr points to the Source itself and detects copies.
	addr *Source

	data   []byte
	font   *opentype.Font
	family string
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &Source{
		data: dataCopy,
		font: f,
	}
	s.addr = s
	s.family = familyName(f)
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

var defaultSource = sync.OnceValue(func() *Source {
	s, err := NewSource(goregular.TTF)
	if err != nil {
		panic("text: embedded Go Regular font: " + err.Error())
	}
	return s
})

// DefaultSource returns the shared Source for the embedded Go Regular font.
func DefaultSource() *Source {
	return defaultSource()
}

// Face returns the font at the given size. The size is in whatever unit
// the caller draws in (points for vector output, pixels for raster), and
// every measurement of the face is in that unit.
// Panics if s is nil.
func (s *Source) Face(size float64) *Face {
	if s == nil {
		panic("text: Source is nil; did you check the error from NewSourceFromFile?")
	}
	s.copyCheck()
	return &Face{source: s, size: size}
}

// Family returns the font family name, or "sans-serif" when the font does
// not carry one.
func (s *Source) Family() string {
	s.copyCheck()
	return s.family
}

// SFNT returns the parsed font for glyph level access.
func (s *Source) SFNT() *sfnt.Font {
	s.copyCheck()
	return s.font
}

func (s *Source) copyCheck() {
	if s.addr != s {
		panic("text: Source must not be copied by value")
	}
}

func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "sans-serif"
}
