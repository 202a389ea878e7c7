//go:build !linux

// File: core/buffer/alloc_stub.go
//
// Portable allocator backend for platforms without the mmap path. Regions
// come from the Go heap; osFree is a no-op because the collector reclaims
// them once the Raw drops its reference.

package buffer

func osAlloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func osFree(_ []byte) {}
