package cache

// node is an element of the recency list.
type node[K comparable] struct {
	key        K
	prev, next *node[K]
}

// recency orders keys from most (front) to least (back) recently used.
// It is not safe for concurrent use.
type recency[K comparable] struct {
	front, back *node[K]
	n           int
}

func (r *recency[K]) len() int { return r.n }

// pushFront inserts key as the most recently used entry.
func (r *recency[K]) pushFront(key K) *node[K] {
	e := &node[K]{key: key, next: r.front}
	if r.front != nil {
		r.front.prev = e
	} else {
		r.back = e
	}
	r.front = e
	r.n++
	return e
}

// touch marks e as the most recently used entry.
func (r *recency[K]) touch(e *node[K]) {
	if e == r.front {
		return
	}
	r.remove(e)
	e.next = r.front
	if r.front != nil {
		r.front.prev = e
	} else {
		r.back = e
	}
	r.front = e
	r.n++
}

// popBack removes the least recently used entry.
func (r *recency[K]) popBack() (K, bool) {
	if r.back == nil {
		var zero K
		return zero, false
	}
	e := r.back
	r.remove(e)
	return e.key, true
}

func (r *recency[K]) remove(e *node[K]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		r.front = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		r.back = e.prev
	}
	e.prev, e.next = nil, nil
	r.n--
}

func (r *recency[K]) clear() {
	r.front, r.back, r.n = nil, nil, 0
}
