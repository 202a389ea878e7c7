// File: core/buffer/raw.go
//
// Raw is the flat byte-buffer container served by the byte pool. Memory
// comes from the platform allocator (mmap on Linux) and is tracked with
// an explicit Layout descriptor; the Go runtime never resizes or moves a
// Raw behind the pool's back.

package buffer

import (
	"github.com/async-email/byte-pool/api"
	"github.com/async-email/byte-pool/internal/diag"
)

// Raw is a contiguous byte region with manually managed capacity.
//
// Unlike the growable containers, a flat buffer is always fully used:
// Len equals Capacity at all times and Resize is a capacity change. A
// fresh Raw is zero-filled.
type Raw struct {
	data   []byte // the mapped region, exactly layout.Size() bytes
	layout Layout
}

var _ api.Reallocable = (*Raw)(nil)
var _ api.Destroyable = (*Raw)(nil)

// NewRaw allocates a buffer of exactly size bytes. It panics when size is
// not positive or when the allocator cannot satisfy the request; neither
// is a recoverable condition for the caller.
func NewRaw(size int) *Raw {
	return &Raw{
		data:   mustAlloc(size),
		layout: layoutForSize(size),
	}
}

func mustAlloc(size int) []byte {
	if size <= 0 {
		panic("bytepool: cannot allocate empty buffers")
	}
	data, err := osAlloc(size)
	if err != nil {
		diag.Logger().Error().Err(err).Int("size", size).Msg("allocator failed")
		panic("bytepool: allocator cannot satisfy request")
	}
	return data
}

// Bytes exposes the full capacity of the buffer, read-write.
func (r *Raw) Bytes() []byte { return r.data[:r.layout.size] }

// Layout returns the descriptor the region was allocated under.
func (r *Raw) Layout() Layout { return r.layout }

// Capacity returns the total usable storage in bytes.
func (r *Raw) Capacity() int { return r.layout.size }

// Len equals Capacity; see the type comment.
func (r *Raw) Len() int { return r.layout.size }

// Empty reports whether the buffer holds no storage, which is only the
// case after Destroy.
func (r *Raw) Empty() bool { return r.layout.size == 0 }

// Resize adjusts the usable size. For a flat buffer that is a capacity
// change: growth default-fills the new tail with zero bytes.
func (r *Raw) Resize(n int) {
	if n != r.layout.size {
		r.Realloc(n)
	}
}

// Reset is a no-op: a flat buffer has no logical content distinct from
// its storage, and its bytes are intentionally retained across reuse.
func (r *Raw) Reset() {}

// Realloc adjusts capacity to exactly newSize bytes. Growth preserves the
// first Capacity() bytes and zero-fills the tail; shrinking keeps the
// first newSize bytes and releases the freed tail storage eagerly.
//
// The old region stays mapped until the new one holds the preserved
// bytes, so the live view never points at released memory.
func (r *Raw) Realloc(newSize int) {
	if newSize == r.layout.size {
		return
	}
	next := mustAlloc(newSize)
	copy(next, r.data[:r.layout.size])
	old := r.data
	r.data = next
	r.layout = layoutForSize(newSize)
	osFree(old)
}

// Destroy releases the region back to the platform allocator using the
// recorded layout. The buffer must not be used afterwards.
func (r *Raw) Destroy() {
	if r.data == nil {
		return
	}
	osFree(r.data)
	r.data = nil
	r.layout = Layout{}
}
