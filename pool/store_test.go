package pool_test

import (
	"testing"

	"github.com/async-email/byte-pool/core/buffer"
	"github.com/async-email/byte-pool/fake"
	"github.com/async-email/byte-pool/pool"
)

func TestDeclinedReleaseDestroysInstance(t *testing.T) {
	store := &fake.Store[*buffer.Raw]{DeclineReleases: true}
	p := pool.NewWithStore[*buffer.Raw](buffer.NewRaw, store)
	defer p.Close()

	p.Alloc(64).Release()

	if store.Declines != 1 {
		t.Fatalf("Declines = %d, want 1", store.Declines)
	}
	st := p.Stats()
	if st.TotalFree != 1 {
		t.Fatalf("TotalFree = %d, want 1 (declined instance must be destroyed)", st.TotalFree)
	}
	if st.Idle != 0 {
		t.Fatalf("Idle = %d, want 0", st.Idle)
	}
}

func TestCustomStoreServesReuse(t *testing.T) {
	store := &fake.Store[*buffer.Raw]{}
	p := pool.NewWithStore[*buffer.Raw](buffer.NewRaw, store)
	defer p.Close()

	p.Alloc(64).Release()
	blk := p.Alloc(64)
	defer blk.Release()

	if store.Releases != 1 || store.Acquires != 2 {
		t.Fatalf("Releases/Acquires = %d/%d, want 1/2", store.Releases, store.Acquires)
	}
	if st := p.Stats(); st.TotalReuse != 1 {
		t.Fatalf("TotalReuse = %d, want 1", st.TotalReuse)
	}
}
