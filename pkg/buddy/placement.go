package buddy

import (
	"github.com/FarazRemi/heap-allocator/internal/debug"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// Alloc reserves a block able to hold size bytes and returns the address
// of its user-visible region, or the zero address if size is zero or the
// arena has no free block of a suitable order.
func (c *Core) Alloc(size int) xunsafe.Addr[byte] {
	if size == 0 {
		return 0
	}

	c.init()
	if c.base.IsZero() {
		return 0
	}

	order := sizeToOrder(size)
	if order > MaxOrder {
		debug.Log(nil, "alloc", "size=%d exceeds arena", size)
		return 0
	}

	found := c.findBlock(order)
	if found.IsNone() {
		debug.Log(nil, "alloc", "no free block for order=%d", order)
		return 0
	}

	addr := found.Unwrap()
	for int(addr.AssertValid().order) > order {
		c.split(addr)
	}

	h := addr.AssertValid()
	h.free = false

	debug.Log(nil, "alloc", "%v", debug.Dict(addr, "size", size, "order", order))
	c.checkInvariantsIfEnabled()
	return dataOf(addr)
}
