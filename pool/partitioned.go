// File: pool/partitioned.go
//
// Size-partitioned free-list store. Idle instances are split by a
// capacity threshold into independent lock-free rings, removing the
// global free-list lock. Acquisition pops one entry from the relevant
// partition; a capacity mismatch is pushed back and the caller allocates
// fresh, since resizing an idle instance to fit would put allocation
// work on a supposedly O(1) path. Releases that find the ring full spill
// to a mutex-guarded FIFO side list; past the spill limit the instance
// is disposed.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/async-email/byte-pool/api"
	"github.com/async-email/byte-pool/internal/concurrency"
)

type partitionedStore[T api.Poolable] struct {
	threshold int
	small     *partition[T]
	large     *partition[T]
	dispose   func(T)
}

var _ api.Store[api.Poolable] = (*partitionedStore[api.Poolable])(nil)

func newPartitionedStore[T api.Poolable](threshold, ringCapacity, overflowLimit int, dispose func(T)) *partitionedStore[T] {
	return &partitionedStore[T]{
		threshold: threshold,
		small:     newPartition[T](ringCapacity, overflowLimit),
		large:     newPartition[T](ringCapacity, overflowLimit),
		dispose:   dispose,
	}
}

func (s *partitionedStore[T]) partitionFor(size int) *partition[T] {
	if size < s.threshold {
		return s.small
	}
	return s.large
}

func (s *partitionedStore[T]) TryAcquire(size int) (T, bool) {
	return s.partitionFor(size).tryAcquire(size, s.dispose)
}

func (s *partitionedStore[T]) Release(inst T) bool {
	return s.partitionFor(inst.Capacity()).release(inst)
}

func (s *partitionedStore[T]) Drain(dispose func(T)) {
	s.small.drain(dispose)
	s.large.drain(dispose)
}

func (s *partitionedStore[T]) Idle() int {
	return s.small.idle() + s.large.idle()
}

// partition is one capacity class: a lock-free ring fronting a bounded
// overflow FIFO.
type partition[T api.Poolable] struct {
	ring          *concurrency.MPMCRing[T]
	overflowLimit int

	mu       sync.Mutex
	overflow *queue.Queue
}

func newPartition[T api.Poolable](ringCapacity, overflowLimit int) *partition[T] {
	return &partition[T]{
		ring:          concurrency.NewMPMCRing[T](ringCapacity),
		overflowLimit: overflowLimit,
		overflow:      queue.New(),
	}
}

func (p *partition[T]) tryAcquire(size int, dispose func(T)) (T, bool) {
	if inst, ok := p.ring.Dequeue(); ok {
		if inst.Capacity() == size {
			return inst, true
		}
		// Exact matches only: put the mismatch back for a later caller.
		if !p.ring.Enqueue(inst) && !p.spill(inst) {
			dispose(inst)
		}
		var zero T
		return zero, false
	}

	// Ring empty; the overflow list may still hold a match at its head.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.overflow.Length() > 0 {
		inst := p.overflow.Remove().(T)
		if inst.Capacity() == size {
			return inst, true
		}
		p.overflow.Add(inst)
	}
	var zero T
	return zero, false
}

func (p *partition[T]) release(inst T) bool {
	if p.ring.Enqueue(inst) {
		return true
	}
	return p.spill(inst)
}

func (p *partition[T]) spill(inst T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.overflow.Length() >= p.overflowLimit {
		return false
	}
	p.overflow.Add(inst)
	return true
}

func (p *partition[T]) drain(dispose func(T)) {
	for {
		inst, ok := p.ring.Dequeue()
		if !ok {
			break
		}
		dispose(inst)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.overflow.Length() > 0 {
		dispose(p.overflow.Remove().(T))
	}
}

func (p *partition[T]) idle() int {
	p.mu.Lock()
	n := p.overflow.Length()
	p.mu.Unlock()
	return p.ring.Len() + n
}
