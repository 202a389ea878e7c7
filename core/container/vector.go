// File: core/container/vector.go
// Package container provides heap-backed poolable containers: a growable
// vector and a hash map. Both satisfy the same capability contract as the
// raw byte buffer, so the pool mechanics apply to them unchanged.

package container

import "github.com/async-email/byte-pool/api"

// Vector is a growable slice of T with exact-capacity discipline: after
// construction or Realloc, Capacity() equals the requested size, which is
// what exact-match pooling keys on.
type Vector[T any] struct {
	elems []T
}

var _ api.Reallocable = (*Vector[int])(nil)

// NewVector produces a vector of length and capacity size, default-filled.
// It panics when size is not positive.
func NewVector[T any](size int) *Vector[T] {
	if size <= 0 {
		panic("bytepool: cannot allocate empty vectors")
	}
	return &Vector[T]{elems: make([]T, size)}
}

// Elems exposes the logically-used portion of the vector.
func (v *Vector[T]) Elems() []T { return v.elems }

// At returns the element at index i.
func (v *Vector[T]) At(i int) T { return v.elems[i] }

// Set stores val at index i.
func (v *Vector[T]) Set(i int, val T) { v.elems[i] = val }

// Capacity returns the total usable storage.
func (v *Vector[T]) Capacity() int { return cap(v.elems) }

// Len returns the logical length.
func (v *Vector[T]) Len() int { return len(v.elems) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return len(v.elems) == 0 }

// Resize adjusts the logical length, default-filling new elements.
// Growing past capacity reallocates to exactly n.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("bytepool: negative resize")
	}
	switch {
	case n <= len(v.elems):
		v.elems = v.elems[:n]
	case n <= cap(v.elems):
		old := len(v.elems)
		v.elems = v.elems[:n]
		var zero T
		for i := old; i < n; i++ {
			v.elems[i] = zero
		}
	default:
		next := make([]T, n)
		copy(next, v.elems)
		v.elems = next
	}
}

// Reset clears logical content, keeping capacity for reuse.
func (v *Vector[T]) Reset() {
	// Zero the retained storage so pooled vectors don't pin old values.
	var zero T
	full := v.elems[:cap(v.elems)]
	for i := range full {
		full[i] = zero
	}
	v.elems = v.elems[:0]
}

// Realloc changes capacity to exactly newSize. Growth preserves existing
// elements and default-fills the tail; shrinking truncates and releases
// the freed tail storage eagerly. After Realloc, Len() == Capacity().
func (v *Vector[T]) Realloc(newSize int) {
	if newSize <= 0 {
		panic("bytepool: cannot reallocate to zero size")
	}
	if newSize == cap(v.elems) {
		v.elems = v.elems[:newSize]
		return
	}
	next := make([]T, newSize)
	copy(next, v.elems)
	v.elems = next
}
