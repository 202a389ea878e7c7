// File: pool/block.go

package pool

import (
	"sync/atomic"

	"github.com/async-email/byte-pool/api"
)

// Block is the scoped checkout handle over one poolable instance. It is
// the sole owner of that instance from Alloc until Release, and Release
// transfers ownership back to the pool exactly once.
//
// A Block must not be shared across goroutines without external
// synchronization; the Pool that issued it may be.
type Block[T api.Reallocable] struct {
	data     T
	pool     *Pool[T]
	released atomic.Bool
}

func newBlock[T api.Reallocable](inst T, p *Pool[T]) *Block[T] {
	return &Block[T]{data: inst, pool: p}
}

// Data returns the owned instance for read/write access. The instance
// must not be retained past Release.
func (b *Block[T]) Data() T {
	b.ensureLive()
	return b.data
}

// Len returns the instance's logical length.
func (b *Block[T]) Len() int {
	b.ensureLive()
	return b.data.Len()
}

// Capacity returns the instance's total usable storage.
func (b *Block[T]) Capacity() int {
	b.ensureLive()
	return b.data.Capacity()
}

// Realloc adjusts the instance's capacity in place; see
// api.Reallocable for the growth and shrink contract.
func (b *Block[T]) Realloc(newSize int) {
	b.ensureLive()
	b.data.Realloc(newSize)
}

// Release returns the instance to the pool. The ownership transfer is
// exactly-once: the instance field is moved out before the pool sees it,
// and a second Release panics instead of double-freeing.
func (b *Block[T]) Release() {
	if !b.released.CompareAndSwap(false, true) {
		panic("bytepool: block released twice")
	}
	inst := b.data
	var zero T
	b.data = zero
	b.pool.release(inst)
}

func (b *Block[T]) ensureLive() {
	if b.released.Load() {
		panic("bytepool: use of released block")
	}
}
