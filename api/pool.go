// File: api/pool.go
//
// Abstract pooling surface: free-list stores and accounting.

package api

// Store holds idle poolable instances between checkouts.
//
// Implementations guarantee that an instance is never held by the store
// and referenced by a live checkout at the same time, and that each
// released instance is handed out at most once.
type Store[T Poolable] interface {
	// TryAcquire removes and returns an idle instance whose capacity is
	// exactly size. ok is false when no such instance is available;
	// the caller then allocates fresh.
	TryAcquire(size int) (inst T, ok bool)

	// Release returns an instance to the store. A false return means the
	// store declined the instance; disposal stays with the caller.
	Release(inst T) bool

	// Drain empties the store, passing every idle instance to dispose.
	Drain(dispose func(T))

	// Idle reports the number of instances currently held.
	Idle() int
}

// Stats aggregates pool allocation and reuse accounting.
type Stats struct {
	TotalAlloc int64 // fresh instances created
	TotalReuse int64 // checkouts served from the store
	TotalFree  int64 // instances destroyed for good
	InUse      int64 // instances currently checked out
	Idle       int64 // instances currently sitting in the store
}
