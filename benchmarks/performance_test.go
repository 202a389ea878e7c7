// Package benchmarks
//
// Pool vs. baseline allocation benchmarks, mirroring the write-heavy
// per-request buffer pattern the pool exists for.

package benchmarks

import (
	"testing"

	"github.com/async-email/byte-pool/pool"
)

func fillAll(data []byte) {
	for i := range data {
		data[i] = 1
	}
}

func benchBaseline(b *testing.B, size int) {
	b.SetBytes(int64(size))
	for i := 0; i < b.N; i++ {
		buf := make([]byte, size)
		fillAll(buf)
	}
}

func benchPool(b *testing.B, size int, opts ...pool.Option) {
	p := pool.NewBytePool(opts...)
	defer p.Close()

	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blk := p.Alloc(size)
		fillAll(blk.Data().Bytes())
		blk.Release()
	}
}

func BenchmarkBaselineAlloc1K(b *testing.B) { benchBaseline(b, 1<<10) }
func BenchmarkBaselineAlloc4K(b *testing.B) { benchBaseline(b, 4<<10) }
func BenchmarkBaselineAlloc8K(b *testing.B) { benchBaseline(b, 8<<10) }

func BenchmarkBytePool1K(b *testing.B) { benchPool(b, 1<<10) }
func BenchmarkBytePool4K(b *testing.B) { benchPool(b, 4<<10) }
func BenchmarkBytePool8K(b *testing.B) { benchPool(b, 8<<10) }

func BenchmarkBytePoolPartitioned4K(b *testing.B) {
	benchPool(b, 4<<10, pool.WithPartitionedStore())
}

// BenchmarkBytePoolParallel measures contention on the default store.
func BenchmarkBytePoolParallel(b *testing.B) {
	p := pool.NewBytePool()
	defer p.Close()

	b.SetBytes(4 << 10)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			blk := p.Alloc(4 << 10)
			blk.Data().Bytes()[0] = 1
			blk.Release()
		}
	})
}

// BenchmarkPartitionedParallel measures the same churn on the lock-free
// store.
func BenchmarkPartitionedParallel(b *testing.B) {
	p := pool.NewBytePool(pool.WithPartitionedStore())
	defer p.Close()

	b.SetBytes(4 << 10)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			blk := p.Alloc(4 << 10)
			blk.Data().Bytes()[0] = 1
			blk.Release()
		}
	})
}

// BenchmarkBlockRealloc measures grow-then-shrink cycles on one block.
func BenchmarkBlockRealloc(b *testing.B) {
	p := pool.NewBytePool()
	defer p.Close()

	blk := p.Alloc(1 << 10)
	defer blk.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blk.Realloc(8 << 10)
		blk.Realloc(1 << 10)
	}
}
