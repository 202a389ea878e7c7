// File: internal/concurrency/mpmc_ring.go
// Package concurrency provides the lock-free primitives backing the
// size-partitioned free-list store.
//
// MPMCRing is a bounded multi-producer/multi-consumer ring using per-cell
// sequence numbers, following Dmitry Vyukov's queue design. Head and tail
// counters sit on separate cache lines to avoid false sharing between
// releasing and acquiring threads.

package concurrency

import "sync/atomic"

const cacheLinePad = 64

// MPMCRing is a bounded lock-free FIFO. Capacity is rounded up to the
// next power of two.
type MPMCRing[T any] struct {
	head atomic.Uint64
	_    [cacheLinePad]byte
	tail atomic.Uint64
	_    [cacheLinePad]byte

	mask  uint64
	cells []ringCell[T]
}

type ringCell[T any] struct {
	seq  atomic.Uint64
	data T
}

// NewMPMCRing allocates a ring holding at least capacity elements.
func NewMPMCRing[T any](capacity int) *MPMCRing[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}

	r := &MPMCRing[T]{
		mask:  uint64(size - 1),
		cells: make([]ringCell[T], size),
	}
	for i := range r.cells {
		r.cells[i].seq.Store(uint64(i))
	}
	return r
}

// Enqueue adds val; returns false when the ring is full.
func (r *MPMCRing[T]) Enqueue(val T) bool {
	for {
		tail := r.tail.Load()
		c := &r.cells[tail&r.mask]
		seq := c.seq.Load()
		dif := int64(seq) - int64(tail)

		switch {
		case dif == 0:
			if r.tail.CompareAndSwap(tail, tail+1) {
				c.data = val
				c.seq.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false // full
		default:
			// tail moved under us, retry
		}
	}
}

// Dequeue removes and returns the oldest item; ok is false when empty.
func (r *MPMCRing[T]) Dequeue() (item T, ok bool) {
	for {
		head := r.head.Load()
		c := &r.cells[head&r.mask]
		seq := c.seq.Load()
		dif := int64(seq) - int64(head+1)

		switch {
		case dif == 0:
			if r.head.CompareAndSwap(head, head+1) {
				item = c.data
				var zero T
				c.data = zero // drop the reference so idle cells don't pin memory
				c.seq.Store(head + r.mask + 1)
				return item, true
			}
		case dif < 0:
			var zero T
			return zero, false // empty
		default:
			// head moved under us, retry
		}
	}
}

// Len reports the number of items currently buffered. The value is a
// snapshot and may be stale under concurrent use.
func (r *MPMCRing[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the fixed ring capacity.
func (r *MPMCRing[T]) Cap() int {
	return len(r.cells)
}
