package cache

// entry is one cached value, linked into the recency ring.
type entry[K comparable, V any] struct {
	key          K
	value        V
	newer, older *entry[K, V]
}

// ring is a circular recency list around a sentinel: root.older is the
// most recently used entry and root.newer the least recently used one.
type ring[K comparable, V any] struct {
	root entry[K, V]
}

func (r *ring[K, V]) init() {
	r.root.newer = &r.root
	r.root.older = &r.root
}

// touch moves e, linked or not, to the most recently used end.
func (r *ring[K, V]) touch(e *entry[K, V]) {
	if e.newer != nil {
		r.detach(e)
	}
	e.newer = &r.root
	e.older = r.root.older
	r.root.older.newer = e
	r.root.older = e
}

func (r *ring[K, V]) detach(e *entry[K, V]) {
	e.newer.older = e.older
	e.older.newer = e.newer
	e.newer, e.older = nil, nil
}

// stalest returns the least recently used entry, or nil when empty.
func (r *ring[K, V]) stalest() *entry[K, V] {
	if r.root.newer == &r.root {
		return nil
	}
	return r.root.newer
}
