package buddy

import "github.com/FarazRemi/heap-allocator/internal/debug"

// checkInvariants walks the whole arena from base, verifying:
//
//   - every block's order is within [0, MaxOrder];
//   - the blocks partition the arena exactly, with sizes summing to N;
//   - no RIGHT block is free while the LEFT buddy just before it is free
//     with the same order (such a pair should have been coalesced);
//   - each block's side matches the left/right rule implied by its
//     offset from base.
//
// It is only ever called from behind a debug.Enabled guard: walking the
// whole arena on every call is too expensive to do unconditionally.
func (c *Core) checkInvariants() bool {
	end := c.base.ByteAdd(N)
	addr := c.base
	total := 0

	var prevFree bool
	var prevOrder int
	havePrev := false

	for addr < end {
		h := addr.AssertValid()

		order := int(h.order)
		if order < 0 || order > MaxOrder {
			return false
		}

		size := blockSize(order)
		total += size

		offset := addr.ByteSub(c.base)
		wantSide := side((offset / size) % 2)
		if h.side != wantSide {
			return false
		}

		if havePrev && prevFree && h.free && prevOrder == order && h.side == right {
			return false
		}

		prevFree = h.free
		prevOrder = order
		havePrev = true

		addr = addr.ByteAdd(size)
	}

	return total == N
}

// checkInvariantsIfEnabled asserts checkInvariants only in debug builds,
// where the assertion's cost is paid for by the caller opting in.
func (c *Core) checkInvariantsIfEnabled() {
	if debug.Enabled {
		debug.Assert(c.checkInvariants(), "buddy: arena invariant violated")
	}
}
