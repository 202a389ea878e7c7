// Package pool
//
// Recycling pool for variable-capacity memory-backed objects. A Pool
// hands out Blocks, scoped exclusive handles that return their instance
// to the free list when released, eliminating repeated allocation in hot
// paths such as per-request buffer acquisition.
//
// Two free-list stores ship side by side: the default bounded-scan mutex
// list (recency-window exact matching) and a size-partitioned lock-free
// store for contention-heavy workloads. See freelist.go and
// partitioned.go for the tradeoff.
//
// Basic usage:
//
//	p := pool.NewBytePool()
//	defer p.Close()
//
//	blk := p.Alloc(1024)
//	copy(blk.Data().Bytes(), payload)
//	blk.Release()
package pool
