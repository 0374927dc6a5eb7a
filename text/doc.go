// Package text loads fonts and measures strings for figure layout.
//
// A Source is a parsed TrueType or OpenType font. It is heavyweight and
// should be shared; DefaultSource returns the embedded Go Regular font.
// A Face is a Source at a particular size and is cheap to create:
//
//	face := text.DefaultSource().Face(10)
//	ext := face.Measure("Sales by region")
//	fmt.Println(ext.Width, ext.Height())
//
// String advances come from the global Shaper. The default GoTextShaper
// runs HarfBuzz shaping (kerning, ligatures, right-to-left scripts) through
// go-text/typesetting. BuiltinShaper sums plain sfnt advances and kerning
// pairs and is faster when shaping quality does not matter.
package text
