// File: pool/freelist.go
//
// Bounded-scan free-list store, the default. A single mutex-guarded
// sequence ordered by release time; acquisition scans only the most
// recent window entries from the tail for an exact capacity match.
// Recently released instances are the likeliest to match the caller's
// working-set size, and the bounded window caps acquisition cost no
// matter how large the store grows.

package pool

import (
	"sync"

	"github.com/async-email/byte-pool/api"
)

type scanStore[T api.Poolable] struct {
	mu     sync.Mutex
	idle   []T
	window int
}

var _ api.Store[api.Poolable] = (*scanStore[api.Poolable])(nil)

func newScanStore[T api.Poolable](window int) *scanStore[T] {
	return &scanStore[T]{window: window}
}

func (s *scanStore[T]) TryAcquire(size int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := len(s.idle)
	start := end - s.window
	if start < 0 {
		start = 0
	}
	for i := end - 1; i >= start; i-- {
		if s.idle[i].Capacity() != size {
			continue
		}
		inst := s.idle[i]
		copy(s.idle[i:], s.idle[i+1:])
		var zero T
		s.idle[end-1] = zero // drop the duplicated tail reference
		s.idle = s.idle[:end-1]
		return inst, true
	}
	var zero T
	return zero, false
}

func (s *scanStore[T]) Release(inst T) bool {
	s.mu.Lock()
	s.idle = append(s.idle, inst)
	s.mu.Unlock()
	return true
}

func (s *scanStore[T]) Drain(dispose func(T)) {
	s.mu.Lock()
	idle := s.idle
	s.idle = nil
	s.mu.Unlock()

	for _, inst := range idle {
		dispose(inst)
	}
}

func (s *scanStore[T]) Idle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.idle)
}
