// File: core/container/map.go

package container

import "github.com/async-email/byte-pool/api"

// Map is a poolable hash map. Go maps hide their bucket storage, so the
// reservation made at construction or Realloc time is tracked explicitly;
// Capacity reports it, and Reset keeps it while clearing entries. The
// runtime retains bucket storage across clear, which is exactly the value
// a pooled map carries to its next user.
type Map[K comparable, V any] struct {
	entries  map[K]V
	reserved int
}

var _ api.Reallocable = (*Map[string, int])(nil)

// NewMap produces a map with space reserved for size entries. Unlike the
// byte-buffer variant, allocation only reserves capacity; the map starts
// logically empty. Panics when size is not positive.
func NewMap[K comparable, V any](size int) *Map[K, V] {
	if size <= 0 {
		panic("bytepool: cannot allocate empty maps")
	}
	return &Map[K, V]{
		entries:  make(map[K]V, size),
		reserved: size,
	}
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Put stores val under key.
func (m *Map[K, V]) Put(key K, val V) { m.entries[key] = val }

// Delete removes key.
func (m *Map[K, V]) Delete(key K) { delete(m.entries, key) }

// Range calls fn for every entry until fn returns false.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	for k, v := range m.entries {
		if !fn(k, v) {
			return
		}
	}
}

// Capacity reports the reserved entry count, never less than Len.
func (m *Map[K, V]) Capacity() int {
	if len(m.entries) > m.reserved {
		return len(m.entries)
	}
	return m.reserved
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return len(m.entries) == 0 }

// Resize is a reservation hint for maps: growing is a no-op because the
// runtime grows buckets on demand, shrinking below the entry count drops
// arbitrary entries to reach n.
func (m *Map[K, V]) Resize(n int) {
	if n < 0 {
		panic("bytepool: negative resize")
	}
	if n >= len(m.entries) {
		return
	}
	for k := range m.entries {
		if len(m.entries) <= n {
			break
		}
		delete(m.entries, k)
	}
}

// Reset removes all entries, keeping the reservation and the runtime's
// bucket storage for reuse.
func (m *Map[K, V]) Reset() { clear(m.entries) }

// Realloc re-reserves bucket storage for newSize entries. Growing keeps
// all entries; shrinking rebuilds into a right-sized map, releasing
// excess buckets eagerly, but never drops entries.
func (m *Map[K, V]) Realloc(newSize int) {
	if newSize <= 0 {
		panic("bytepool: cannot reallocate to zero size")
	}
	hint := newSize
	if len(m.entries) > hint {
		hint = len(m.entries)
	}
	next := make(map[K]V, hint)
	for k, v := range m.entries {
		next[k] = v
	}
	m.entries = next
	m.reserved = hint
}
