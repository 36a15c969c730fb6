package freelist

import (
	"github.com/FarazRemi/heap-allocator/internal/debug"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// checkInvariants walks the all-blocks list and the free list, verifying:
//
//   - the all-blocks list is strictly address-ordered and ends at tail;
//   - the free list is strictly address-ordered;
//   - every free-list node also appears on the all-blocks list;
//   - no two address-adjacent all-blocks entries are both free (such a
//     pair should have been coalesced).
//
// It is only ever called from behind a debug.Enabled guard: walking both
// lists on every call is too expensive to do unconditionally.
func (c *Core) checkInvariants() bool {
	free := make(map[xunsafe.Addr[header]]bool)

	prevFree := c.freeHead
	for !prevFree.IsZero() {
		free[prevFree] = true

		next := prevFree.AssertValid().nextFree
		if !next.IsZero() && next <= prevFree {
			return false
		}
		prevFree = next
	}

	var last xunsafe.Addr[header]
	node := c.head
	havePrevWasFree := false
	prevWasFree := false
	seenFree := 0

	for !node.IsZero() {
		h := node.AssertValid()

		if !last.IsZero() && node <= last {
			return false
		}

		isFree := free[node]
		if isFree {
			seenFree++
		}
		if havePrevWasFree && prevWasFree && isFree {
			return false
		}

		havePrevWasFree = true
		prevWasFree = isFree
		last = node
		node = h.next
	}

	if last != c.tail || seenFree != len(free) {
		return false
	}

	return true
}

// checkInvariantsIfEnabled asserts checkInvariants only in debug builds,
// where the assertion's cost is paid for by the caller opting in.
func (c *Core) checkInvariantsIfEnabled() {
	if debug.Enabled {
		debug.Assert(c.checkInvariants(), "freelist: arena invariant violated")
	}
}
