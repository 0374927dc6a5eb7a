package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.toml
var defaultConfig []byte

// envPrefix selects the environment variables read into the config, e.g.
// GGSHOW_FORMAT=png.
const envPrefix = "GGSHOW_"

// config holds the settings that may come from files or the environment.
type config struct {
	Format      string        `koanf:"format"`
	Tight       bool          `koanf:"tight"`
	InputFormat string        `koanf:"input_format"`
	Debounce    time.Duration `koanf:"debounce"`
}

// rawBytesProvider feeds an in-memory document to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("rawBytesProvider does not support Read")
}

// loadConfig layers the embedded defaults, the user config file and the
// environment. An empty path searches the XDG config directories.
func loadConfig(path string) (config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: bytes.Clone(defaultConfig)}, toml.Parser()); err != nil {
		return config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		if found, err := xdg.SearchConfigFile("ggshow/config.toml"); err == nil {
			path = found
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var c config
	if err := k.Unmarshal("", &c); err != nil {
		return config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, nil
}
