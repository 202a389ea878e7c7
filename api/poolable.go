// File: api/poolable.go
//
// Capability contracts for pool-managed containers.
//
// A type qualifies for pooling by implementing Poolable; types that can
// adjust their capacity in place additionally implement Reallocable. The
// pool never inspects a container's representation, only these
// capabilities, so new container kinds plug in without touching the pool.

package api

// Poolable is the contract every pool-managed container satisfies.
//
// Capacity is the total usable storage of the instance; Len is the
// logically-used prefix. The two coincide for flat byte buffers and
// diverge for growable containers.
type Poolable interface {
	Capacity() int
	Len() int
	Empty() bool

	// Resize adjusts the logical length, default-filling new elements
	// when growing. Resizing past Capacity grows the storage.
	Resize(n int)

	// Reset clears logical content without releasing capacity. It runs
	// before an instance re-enters circulation.
	Reset()
}

// Reallocable extends Poolable with in-place capacity adjustment.
//
// Growing preserves content in [0, old capacity). Shrinking truncates to
// the new capacity and releases the freed tail storage eagerly.
type Reallocable interface {
	Poolable

	// Realloc panics if newSize == 0 or if the underlying allocator
	// cannot satisfy the request. Neither is a recoverable condition.
	Realloc(newSize int)
}

// Destroyable is implemented by containers holding resources the garbage
// collector will not reclaim on its own. The pool calls Destroy exactly
// once, when it drops an idle instance for good.
type Destroyable interface {
	Destroy()
}

// Factory produces a fresh instance with capacity >= size. It is the
// allocation half of the Poolable capability: Go interfaces cannot carry
// constructors, so pools take a Factory at construction instead.
type Factory[T Poolable] func(size int) T
