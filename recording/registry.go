package recording

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned when no backend is registered for a format.
var ErrUnknownFormat = errors.New("recording: unknown format")

// BackendFactory makes a fresh backend for one playback.
type BackendFactory func() Backend

// Format is a registry entry.
type Format struct {
	Name       string   // registry key, e.g. "svg"
	Extensions []string // lower-case, with the leading dot
	MediaType  string
	// Vector formats are recorded in points and raster formats in pixels.
	Vector bool
	New    BackendFactory
}

// registry maps format names to entries. Backend packages fill it from
// init, the way database/sql drivers register themselves.
type registry struct {
	mu     sync.RWMutex
	byName map[string]Format
}

var formats = &registry{byName: make(map[string]Format)}

func (r *registry) add(f Format) {
	switch {
	case f.New == nil:
		panic("recording: Register factory is nil")
	case f.Name == "":
		panic("recording: Register name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[f.Name]; dup {
		panic("recording: Register called twice for " + f.Name)
	}
	r.byName[f.Name] = f
}

func (r *registry) find(match func(Format) bool) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.byName {
		if match(f) {
			return f, true
		}
	}
	return Format{}, false
}

// Register adds a format and panics on a nil factory, an empty name or a
// duplicate. Backend packages call it from init:
//
//	func init() {
//	    recording.Register(recording.Format{
//	        Name:       "svg",
//	        Extensions: []string{".svg"},
//	        MediaType:  "image/svg+xml",
//	        Vector:     true,
//	        New:        func() recording.Backend { return NewBackend() },
//	    })
//	}
func Register(f Format) { formats.add(f) }

// Unregister drops a format. Tests use it to clean up.
func Unregister(name string) {
	formats.mu.Lock()
	delete(formats.byName, name)
	formats.mu.Unlock()
}

// Lookup finds a format by name.
func Lookup(name string) (Format, error) {
	f, ok := formats.find(func(f Format) bool { return f.Name == name })
	if !ok {
		return Format{}, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownFormat, name)
	}
	return f, nil
}

// LookupPath finds a format by the extension of path, ignoring case.
func LookupPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formats.find(func(f Format) bool { return slices.Contains(f.Extensions, ext) })
	if !ok {
		return Format{}, fmt.Errorf("%w for extension %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

// NewBackend builds a backend for the named format.
func NewBackend(name string) (Backend, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.New(), nil
}

// MustBackend is NewBackend that panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends lists registered names in sorted order.
func Backends() []string {
	formats.mu.RLock()
	defer formats.mu.RUnlock()
	return slices.Sorted(maps.Keys(formats.byName))
}

// IsRegistered reports whether name has a backend.
func IsRegistered(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// Count is the number of registered formats.
func Count() int {
	formats.mu.RLock()
	defer formats.mu.RUnlock()
	return len(formats.byName)
}
