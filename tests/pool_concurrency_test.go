// pool_concurrency_test.go — Pool behavior under concurrent checkout churn.
package tests

import (
	"fmt"
	"sync"
	"testing"

	"github.com/async-email/byte-pool/pool"
)

// N goroutines cycling alloc-then-release of one size must never leave
// more idle instances behind than the peak number of concurrent holders.
// The mutex store guarantees the bound exactly: a completed release is
// always inside the scan window of the next same-size acquisition.
func TestBoundedReuseUnderConcurrency(t *testing.T) {
	p := pool.NewBytePool()
	defer p.Close()

	const workers = 2
	const cycles = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < cycles; i++ {
				blk := p.Alloc(64)
				blk.Data().Bytes()[0] = byte(i)
				blk.Release()
			}
		}()
	}
	wg.Wait()

	st := p.Stats()
	if st.Idle > workers {
		t.Fatalf("Idle = %d after join, want <= %d", st.Idle, workers)
	}
	if st.InUse != 0 {
		t.Fatalf("InUse = %d after join, want 0", st.InUse)
	}
	if st.TotalAlloc > workers {
		t.Fatalf("TotalAlloc = %d, want <= %d (churn must reuse)", st.TotalAlloc, workers)
	}
}

// The lock-free store may transiently miss an instance that is mid-flight
// in the ring and allocate one extra, so the bound above does not hold
// exactly; every instance must still be accounted for once the churn
// stops.
func TestPartitionedChurnConservation(t *testing.T) {
	p := pool.NewBytePool(pool.WithPartitionedStore())
	defer p.Close()

	const workers = 4
	const cycles = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < cycles; i++ {
				blk := p.Alloc(64)
				blk.Data().Bytes()[0] = byte(i)
				blk.Release()
			}
		}()
	}
	wg.Wait()

	st := p.Stats()
	if st.InUse != 0 {
		t.Fatalf("InUse = %d after join, want 0", st.InUse)
	}
	if st.Idle+st.TotalFree != st.TotalAlloc {
		t.Fatalf("instance leak: Idle(%d) + TotalFree(%d) != TotalAlloc(%d)",
			st.Idle, st.TotalFree, st.TotalAlloc)
	}
	if st.TotalReuse == 0 {
		t.Fatal("TotalReuse = 0, churn never hit the free list")
	}
}

// Two live blocks must never share backing memory, no matter which
// goroutines allocated them.
func TestNoAliasingBetweenLiveBlocks(t *testing.T) {
	p := pool.NewBytePool()
	defer p.Close()

	const workers = 8
	const rounds = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id byte) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				a := p.Alloc(1024)
				fill(a.Data().Bytes(), id)

				b := p.Alloc(1024)
				fill(b.Data().Bytes(), id^0xff)

				if err := verify(a.Data().Bytes(), id); err != "" {
					t.Error(err)
				}
				if err := verify(b.Data().Bytes(), id^0xff); err != "" {
					t.Error(err)
				}
				a.Release()
				b.Release()
			}
		}(byte(w + 1))
	}
	wg.Wait()
}

func fill(data []byte, v byte) {
	for i := range data {
		data[i] = v
	}
}

func verify(data []byte, want byte) string {
	for i, b := range data {
		if b != want {
			return fmt.Sprintf("buffer aliased: byte %d = %#x, want %#x", i, b, want)
		}
	}
	return ""
}

// A release completed on one goroutine is visible to an acquisition that
// starts afterwards on another.
func TestReleaseThenAcquireAcrossGoroutines(t *testing.T) {
	p := pool.NewBytePool()
	defer p.Close()

	released := make(chan struct{})
	reused := make(chan bool)

	go func() {
		blk := p.Alloc(256)
		blk.Release()
		close(released)
	}()
	go func() {
		<-released
		blk := p.Alloc(256)
		defer blk.Release()
		reused <- p.Stats().TotalReuse == 1
	}()

	if !<-reused {
		t.Fatal("released instance not visible to later acquisition")
	}
}

// Outstanding blocks stay usable while other goroutines hammer the pool,
// and the idle count moves by exactly one per release.
func TestExactlyOnceReleaseAccounting(t *testing.T) {
	p := pool.NewBytePool()
	defer p.Close()

	const holders = 16
	blocks := make([]*pool.ByteBlock, holders)
	for i := range blocks {
		blocks[i] = p.Alloc(128)
	}

	var wg sync.WaitGroup
	for i := range blocks {
		wg.Add(1)
		go func(blk *pool.ByteBlock) {
			defer wg.Done()
			blk.Release()
		}(blocks[i])
	}
	wg.Wait()

	st := p.Stats()
	if st.Idle != holders {
		t.Fatalf("Idle = %d, want %d (one release per block)", st.Idle, holders)
	}
	if st.InUse != 0 {
		t.Fatalf("InUse = %d, want 0", st.InUse)
	}
}
