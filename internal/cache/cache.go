package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 1024

// Cache is a thread-safe LRU cache holding at most Capacity entries.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	order    recency[K]
	capacity int

	hits, misses atomic.Uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *node[K]
}

// Stats is a snapshot of cache usage.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: capacity,
	}
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.order.touch(e.node)
		c.hits.Add(1)
		return e.value, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set stores value for key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the value for key, calling create on a miss.
// create runs under the cache lock and must not use the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.order.touch(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	v := create()
	c.set(key, v)
	return v
}

func (c *Cache[K, V]) set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.touch(e.node)
		return
	}
	for c.order.len() >= c.capacity {
		oldest, ok := c.order.popBack()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.order.pushFront(key)}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.remove(e.node)
	delete(c.entries, key)
	return true
}

// Clear removes every entry. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.order.clear()
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Stats returns current usage counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{Len: c.Len(), Hits: c.hits.Load(), Misses: c.misses.Load()}
}
