// Package fake provides scriptable test doubles for pool collaborators.
package fake

import (
	"sync"

	"github.com/async-email/byte-pool/api"
)

// Store is a scriptable api.Store for exercising pool paths a real store
// rarely takes, such as declined releases.
type Store[T api.Poolable] struct {
	mu   sync.Mutex
	idle []T

	// DeclineReleases makes Release refuse every instance, forcing the
	// pool onto its destroy path.
	DeclineReleases bool

	Acquires int
	Releases int
	Declines int
}

var _ api.Store[api.Poolable] = (*Store[api.Poolable])(nil)

func (s *Store[T]) TryAcquire(size int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Acquires++
	for i, inst := range s.idle {
		if inst.Capacity() == size {
			s.idle = append(s.idle[:i], s.idle[i+1:]...)
			return inst, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Release(inst T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeclineReleases {
		s.Declines++
		return false
	}
	s.Releases++
	s.idle = append(s.idle, inst)
	return true
}

func (s *Store[T]) Drain(dispose func(T)) {
	s.mu.Lock()
	idle := s.idle
	s.idle = nil
	s.mu.Unlock()
	for _, inst := range idle {
		dispose(inst)
	}
}

func (s *Store[T]) Idle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.idle)
}
