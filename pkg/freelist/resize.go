package freelist

import (
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// Resize changes the block backing ptr to hold newSize bytes, shrinking
// it in place (splitting off a free remainder when the remainder is
// worth keeping) when possible, or allocating a new block, copying the
// existing contents, and releasing ptr otherwise.
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

	node := headerOf(ptr)
	h := node.AssertValid()

	if newSize <= h.size {
		if (newSize+headerSize)*2 < h.size+headerSize {
			c.split(node, newSize)
			c.Release(dataOf(h.next))
		}
		c.checkInvariantsIfEnabled()
		return dataOf(node)
	}

	oldSize := h.size

	newPtr := c.Alloc(newSize)
	if newPtr.IsZero() {
		return 0
	}

	if oldSize > 0 {
		xunsafe.Copy(newPtr.AssertValid(), ptr.AssertValid(), oldSize)
	}
	c.Release(ptr)

	return newPtr
}
