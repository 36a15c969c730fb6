package buddy

import (
	"github.com/FarazRemi/heap-allocator/internal/debug"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// Release frees the block backing ptr, coalescing it with its buddy
// repeatedly while both are free and share an order. ptr must have been
// returned by [Core.Alloc] on the same Core, or be the zero address, in
// which case Release is a no-op.
func (c *Core) Release(ptr xunsafe.Addr[byte]) {
	if ptr.IsZero() {
		return
	}

	addr := headerOf(ptr)
	h := addr.AssertValid()
	h.free = true

	for h.free && h.order < MaxOrder {
		if h.side == right {
			addr = addr.ByteAdd(-blockSize(int(h.order)))
			h = addr.AssertValid()
			continue
		}

		siblingAddr := addr.ByteAdd(blockSize(int(h.order)))
		sibling := siblingAddr.AssertValid()

		if sibling.free && sibling.order == h.order {
			c.coalesce(addr)
			h = addr.AssertValid()
		} else {
			break
		}
	}

	debug.Log(nil, "release", "%v -> order=%d", addr, h.order)
	c.checkInvariantsIfEnabled()
}
