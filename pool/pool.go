// File: pool/pool.go

package pool

import (
	"sync/atomic"

	"github.com/async-email/byte-pool/api"
	"github.com/async-email/byte-pool/internal/diag"
)

// Pool recycles poolable instances across goroutines. Any goroutine may
// call Alloc and any goroutine may release the resulting Block; the
// free-list store serializes all shared state.
//
// A Pool is created empty. The store grows only through Block releases
// and shrinks only through reuse, until Close drains it.
type Pool[T api.Reallocable] struct {
	store   api.Store[T]
	factory api.Factory[T]
	closed  atomic.Bool

	allocs atomic.Int64
	reuses atomic.Int64
	frees  atomic.Int64
	inUse  atomic.Int64
}

// New constructs a pool around factory, which must return instances with
// capacity >= the requested size. Options select and tune the free-list
// store; the default is the bounded-scan list.
func New[T api.Reallocable](factory api.Factory[T], opts ...Option) *Pool[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool[T]{factory: factory}
	if cfg.partitioned {
		p.store = newPartitionedStore[T](cfg.threshold, cfg.partitionCapacity, cfg.overflowLimit, p.destroy)
	} else {
		p.store = newScanStore[T](cfg.scanWindow)
	}
	return p
}

// NewWithStore constructs a pool around a caller-provided free-list
// store. The store must uphold the api.Store ownership contract.
func NewWithStore[T api.Reallocable](factory api.Factory[T], store api.Store[T]) *Pool[T] {
	return &Pool[T]{factory: factory, store: store}
}

// Alloc checks out an instance with capacity exactly size, reusing an
// idle one when the store has a match and allocating fresh otherwise.
// It panics when size is not positive or the pool is closed; a zero-size
// request is a logic bug in the caller, not a runtime condition.
func (p *Pool[T]) Alloc(size int) *Block[T] {
	if size <= 0 {
		panic("bytepool: cannot allocate empty blocks")
	}
	if p.closed.Load() {
		panic("bytepool: alloc on closed pool")
	}

	if inst, ok := p.store.TryAcquire(size); ok {
		p.reuses.Add(1)
		p.inUse.Add(1)
		return newBlock(inst, p)
	}

	inst := p.factory(size)
	p.allocs.Add(1)
	p.inUse.Add(1)
	return newBlock(inst, p)
}

// release takes back exclusive ownership of inst from a dying Block.
// Exactly one of three things happens: the instance re-enters the store,
// the store declines it and it is destroyed, or the pool is already
// closed and it is destroyed directly.
func (p *Pool[T]) release(inst T) {
	inst.Reset()
	p.inUse.Add(-1)

	if p.closed.Load() {
		p.destroy(inst)
		return
	}
	if !p.store.Release(inst) {
		p.destroy(inst)
		return
	}
	// Close may have drained between the closed check and the push
	// landing; sweep again so no instance outlives the pool in the store.
	if p.closed.Load() {
		p.store.Drain(p.destroy)
	}
}

func (p *Pool[T]) destroy(inst T) {
	p.frees.Add(1)
	if d, ok := any(inst).(api.Destroyable); ok {
		d.Destroy()
	}
}

// Close drains the store and destroys every idle instance. Blocks still
// outstanding stay valid; their eventual release detects the closed pool
// and frees directly instead of re-entering the store. Close is
// idempotent. Alloc after Close panics.
func (p *Pool[T]) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	p.store.Drain(p.destroy)
	diag.Logger().Debug().
		Int64("allocs", p.allocs.Load()).
		Int64("reuses", p.reuses.Load()).
		Int64("frees", p.frees.Load()).
		Int64("in_use", p.inUse.Load()).
		Msg("pool closed")
}

// Stats returns a snapshot of the pool's accounting counters.
func (p *Pool[T]) Stats() api.Stats {
	return api.Stats{
		TotalAlloc: p.allocs.Load(),
		TotalReuse: p.reuses.Load(),
		TotalFree:  p.frees.Load(),
		InUse:      p.inUse.Load(),
		Idle:       int64(p.store.Idle()),
	}
}
