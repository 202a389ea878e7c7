// File: pool/bytepool.go

package pool

import "github.com/async-email/byte-pool/core/buffer"

// BytePool recycles flat byte buffers, the common case.
type BytePool = Pool[*buffer.Raw]

// ByteBlock is the checkout handle a BytePool produces. Its contents are
// reached through Data().Bytes().
type ByteBlock = Block[*buffer.Raw]

// NewBytePool constructs a pool of raw byte buffers.
func NewBytePool(opts ...Option) *BytePool {
	return New[*buffer.Raw](buffer.NewRaw, opts...)
}
