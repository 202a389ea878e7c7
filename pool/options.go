// File: pool/options.go

package pool

const (
	defaultScanWindow         = 4
	defaultSizeClassThreshold = 4 << 10
	defaultPartitionCapacity  = 1024
	defaultOverflowLimit      = 1024
)

type config struct {
	scanWindow        int
	threshold         int
	partitionCapacity int
	overflowLimit     int
	partitioned       bool
}

func defaultConfig() config {
	return config{
		scanWindow:        defaultScanWindow,
		threshold:         defaultSizeClassThreshold,
		partitionCapacity: defaultPartitionCapacity,
		overflowLimit:     defaultOverflowLimit,
	}
}

// Option adjusts pool construction. The zero-option pool uses the
// bounded-scan store with a window of 4.
type Option func(*config)

// WithScanWindow sets how many of the most recently released instances
// the bounded-scan store examines per acquisition. Values below 1 fall
// back to the default.
func WithScanWindow(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.scanWindow = n
		}
	}
}

// WithPartitionedStore switches the pool to the size-partitioned
// lock-free store. Under heavy cross-thread churn this removes the global
// free-list lock at the cost of exact-match precision: a popped instance
// of the wrong capacity is pushed back and a fresh one is allocated.
func WithPartitionedStore() Option {
	return func(c *config) { c.partitioned = true }
}

// WithSizeClassThreshold sets the capacity, in bytes or elements, at
// which the partitioned store routes instances to the large partition.
func WithSizeClassThreshold(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.threshold = n
		}
	}
}

// WithPartitionCapacity bounds each partition's lock-free ring. Releases
// beyond it spill to the overflow list, and past that are freed.
func WithPartitionCapacity(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.partitionCapacity = n
		}
	}
}
