package freelist

import (
	"github.com/FarazRemi/heap-allocator/internal/debug"
	"github.com/FarazRemi/heap-allocator/pkg/opt"
	"github.com/FarazRemi/heap-allocator/pkg/tuple"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// freeNeighbors returns (prev, next), the free-list blocks immediately
// behind and ahead of node in address order. prev is none if node would
// become the new free-list head; next is the zero address if node would
// become the new tail of the free list.
func (c *Core) freeNeighbors(node xunsafe.Addr[header]) tuple.Tuple2[opt.Option[xunsafe.Addr[header]], xunsafe.Addr[header]] {
	prev := opt.None[xunsafe.Addr[header]]()
	cur := c.freeHead

	for !cur.IsZero() && cur < node {
		prev = opt.Some(cur)
		cur = cur.AssertValid().nextFree
	}

	return tuple.New2(prev, cur)
}

// Release frees the block backing ptr, reinserting it into the free list
// at its address-ordered position and coalescing it with whichever
// neighbors turn out to be adjacent in memory. ptr must have been
// returned by [Core.Alloc] on the same Core, or be the zero address, in
// which case Release is a no-op.
func (c *Core) Release(ptr xunsafe.Addr[byte]) {
	if ptr.IsZero() {
		return
	}

	freed := headerOf(ptr)

	prev, next := c.freeNeighbors(freed).Unpack()

	freed.AssertValid().nextFree = next
	if prev.IsSome() {
		prev.Unwrap().AssertValid().nextFree = freed
	} else {
		c.freeHead = freed
	}

	if prev.IsSome() && prev.Unwrap().AssertValid().next == freed {
		p := prev.Unwrap()
		c.coalesce(p)
		freed = p
	}

	if !next.IsZero() && freed.AssertValid().next == next {
		c.coalesce(freed)
	}

	debug.Log(nil, "release", "%v", freed)
	c.checkInvariantsIfEnabled()
}
