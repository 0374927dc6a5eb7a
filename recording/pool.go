package recording

import "github.com/gogpu/ggplot/paint"

// ResourcePool holds the paths and brushes that commands refer to by index.
// Equal brushes are stored once. Not safe for concurrent use.
type ResourcePool struct {
	paths   []*paint.Path
	brushes []Brush
	seen    map[Brush]BrushRef
}

// NewResourcePool returns an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{seen: make(map[Brush]BrushRef)}
}

// AddPath stores a copy of path, so later edits by the caller do not leak
// into the recording.
func (p *ResourcePool) AddPath(path *paint.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	return p.adoptPath(path)
}

// adoptPath stores path itself. The caller gives up ownership.
func (p *ResourcePool) adoptPath(path *paint.Path) PathRef {
	p.paths = append(p.paths, path)
	return PathRef(len(p.paths) - 1) // #nosec G115 -- bounded by memory
}

// GetPath resolves ref, or returns nil if it is out of range.
func (p *ResourcePool) GetPath(ref PathRef) *paint.Path {
	return at(p.paths, uint32(ref))
}

// AddBrush stores brush unless an equal one is already present, and
// returns the reference either way.
func (p *ResourcePool) AddBrush(brush Brush) BrushRef {
	ref, ok := p.seen[brush]
	if !ok {
		p.brushes = append(p.brushes, brush)
		ref = BrushRef(len(p.brushes) - 1) // #nosec G115 -- bounded by memory
		p.seen[brush] = ref
	}
	return ref
}

// GetBrush resolves ref, or returns nil if it is out of range.
func (p *ResourcePool) GetBrush(ref BrushRef) Brush {
	return at(p.brushes, uint32(ref))
}

// PathCount returns the number of stored paths.
func (p *ResourcePool) PathCount() int { return len(p.paths) }

// BrushCount returns the number of distinct brushes.
func (p *ResourcePool) BrushCount() int { return len(p.brushes) }

func at[T any](s []T, i uint32) T {
	if uint64(i) < uint64(len(s)) {
		return s[i]
	}
	var zero T
	return zero
}
