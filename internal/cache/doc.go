// Package cache provides a bounded LRU cache used to memoize text
// measurements.
//
// Tight layout measures every tick label, axis label and title of a figure
// and drawing measures them again, so the same strings are shaped many
// times per render. Shaping with HarfBuzz is far more expensive than a map
// lookup.
//
//	c := cache.New[string, float64](1024)
//	w := c.GetOrCreate("0.5", func() float64 { return shape("0.5") })
package cache
