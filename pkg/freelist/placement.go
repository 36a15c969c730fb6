package freelist

import (
	"github.com/FarazRemi/heap-allocator/internal/debug"
	"github.com/FarazRemi/heap-allocator/pkg/opt"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// Alloc reserves a block able to hold size bytes and returns the address
// of its user-visible region, or the zero address if size is zero or the
// arena could not be extended.
//
// The free list is searched first-fit, in address order. A candidate
// large enough to leave a remainder worth keeping is split: the front
// is returned to the caller, the remainder stays on both lists. If no
// free block fits, a new one is appended to the arena.
func (c *Core) Alloc(size int) xunsafe.Addr[byte] {
	if size == 0 {
		return 0
	}

	prev := opt.None[xunsafe.Addr[header]]()
	node := c.freeHead

	for !node.IsZero() {
		h := node.AssertValid()

		if size <= h.size {
			if (size+headerSize)*2 < h.size+headerSize {
				c.split(node, size)
				h = node.AssertValid()
			}

			if prev.IsSome() {
				prev.Unwrap().AssertValid().nextFree = h.nextFree
			} else {
				c.freeHead = h.nextFree
			}

			debug.Log(nil, "alloc", "size=%d reused %v", size, node)
			c.checkInvariantsIfEnabled()
			return dataOf(node)
		}

		prev = opt.Some(node)
		node = h.nextFree
	}

	p := c.newNode(size)
	debug.Log(nil, "alloc", "size=%d extended arena -> %v", size, p)
	c.checkInvariantsIfEnabled()
	return p
}
