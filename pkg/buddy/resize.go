package buddy

import (
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// Resize changes the block backing ptr to hold newSize bytes, shrinking
// it in place (by splitting down to the smaller order) when possible, or
// allocating a new block, copying the overlapping prefix, and releasing
// ptr otherwise.
//
// A nil ptr behaves as [Core.Alloc]; a newSize of zero behaves as
// [Core.Release] and returns the zero address.
func (c *Core) Resize(ptr xunsafe.Addr[byte], newSize int) xunsafe.Addr[byte] {
	if ptr.IsZero() {
		return c.Alloc(newSize)
	}
	if newSize == 0 {
		c.Release(ptr)
		return 0
	}

	addr := headerOf(ptr)
	h := addr.AssertValid()
	newOrder := sizeToOrder(newSize)

	if newOrder <= int(h.order) {
		h.free = true // split only accepts free blocks; busy again below
		for int(h.order) > newOrder {
			c.split(addr)
			h = addr.AssertValid()
		}
		h.free = false
		c.checkInvariantsIfEnabled()
		return dataOf(addr)
	}

	oldCap := blockSize(int(h.order)) - headerSize

	newPtr := c.Alloc(newSize)
	if newPtr.IsZero() {
		return 0
	}

	if oldCap > 0 {
		xunsafe.Copy(newPtr.AssertValid(), ptr.AssertValid(), oldCap)
	}
	c.Release(ptr)

	return newPtr
}
