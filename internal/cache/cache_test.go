package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
	if New[string, int](0).Capacity() != DefaultCapacity {
		t.Error("non-positive capacity should use DefaultCapacity")
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 || c.Len() != 1 {
		t.Errorf("overwrite: got %d with %d entries", val, c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	createCalled := 0
	create := func() int {
		createCalled++
		return 100
	}

	if val := c.GetOrCreate("key1", create); val != 100 {
		t.Errorf("expected 100, got %d", val)
	}
	if val := c.GetOrCreate("key1", create); val != 100 {
		t.Errorf("expected 100, got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate() != 0.5 {
		t.Errorf("stats = %+v, hit rate %v", s, s.HitRate())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch "a" so "b" becomes the oldest.
	c.Get("a")
	c.Set("d", 4)

	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	if !c.Delete(2) || c.Delete(2) {
		t.Error("Delete should report presence once")
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}

	// The list must stay consistent after Delete: fill past capacity.
	for i := 10; i < 20; i++ {
		c.Set(i, i)
	}
	if c.Len() != 4 {
		t.Errorf("expected 4 entries, got %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d", c.Len())
	}
	c.Set(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestRecencyOrder(t *testing.T) {
	var r recency[int]
	n1 := r.pushFront(1)
	r.pushFront(2)
	n3 := r.pushFront(3)

	r.touch(n1) // 1 3 2
	r.remove(n3)

	var got []int
	for e := r.front; e != nil; e = e.next {
		got = append(got, e.key)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 || r.len() != 2 {
		t.Errorf("order = %v (len %d), want [1 2]", got, r.len())
	}
	if k, ok := r.popBack(); !ok || k != 2 {
		t.Errorf("popBack = %d, %v", k, ok)
	}
	if k, ok := r.popBack(); !ok || k != 1 {
		t.Errorf("popBack = %d, %v", k, ok)
	}
	if _, ok := r.popBack(); ok {
		t.Error("popBack on empty list should fail")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := strconv.Itoa((g*31 + i) % 100)
				c.GetOrCreate(k, func() int { return i })
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("cache grew past capacity: %d", c.Len())
	}
}

func BenchmarkCacheHit(b *testing.B) {
	c := New[string, float64](1024)
	c.Set("0.5", 12.5)
	b.ReportAllocs()
	for b.Loop() {
		c.Get("0.5")
	}
}
