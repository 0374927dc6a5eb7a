package figspec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats lists the accepted input formats.
var Formats = []string{"json", "yaml", "toml"}

// FormatOf returns the input format for a file name by its extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads a description in the given format. Unknown fields are
// rejected in every format.
func Decode(r io.Reader, format string) (*Spec, error) {
	var s Spec
	switch strings.ToLower(format) {
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("figspec: decode json: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, fmt.Errorf("figspec: decode yaml: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("figspec: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &s, nil
}

// Load reads a description from a file, picking the format from the
// extension.
func Load(path string) (*Spec, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("figspec: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}
