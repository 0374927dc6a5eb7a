package text

import (
	"sync"

	"github.com/gogpu/ggplot/internal/cache"
)

// Shaper computes the horizontal advance of a string set in a face.
type Shaper interface {
	Advance(s string, face *Face) float64
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// advanceKey identifies a memoized advance.
type advanceKey struct {
	source *Source
	size   float64
	s      string
}

// advances memoizes Face.Advance for the current shaper.
var advances = cache.New[advanceKey, float64](4096)

// SetShaper sets the global shaper used by Face.Advance.
// Pass nil to reset to the default GoTextShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
	advances.Clear()
}

// CurrentShaper returns the global shaper.
func CurrentShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}
