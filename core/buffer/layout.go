// File: core/buffer/layout.go

package buffer

// Layout records the size and alignment a region was requested with. The
// descriptor travels with the memory for its whole lifetime: releasing a
// manually managed region with anything but the layout it was allocated
// under corrupts the allocator, so Raw never separates the two.
type Layout struct {
	size  int
	align int
}

// byte buffers use the natural alignment of a byte
const byteAlign = 1

func layoutForSize(size int) Layout {
	return Layout{size: size, align: byteAlign}
}

// Size returns the usable byte length of the region.
func (l Layout) Size() int { return l.size }

// Align returns the alignment the region was allocated at.
func (l Layout) Align() int { return l.align }
