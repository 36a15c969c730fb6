// Package freelist implements an address-ordered free-list allocator
// over an arena that grows one block at a time.
//
// Every block lives on a singly-linked "all blocks" list in address
// order (used to find memory-adjacent neighbors at release time) and,
// while free, also on a singly-linked free list, itself kept in address
// order. Allocation walks the free list first-fit; release reinserts the
// freed block at its address-ordered position and coalesces it with
// whichever neighbors turn out to be adjacent in memory. See [Core] for
// the entry points.
package freelist

import (
	"github.com/FarazRemi/heap-allocator/pkg/arena"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe/layout"
)

// arenaCap bounds how large this core's arena may ever grow. It plays no
// role in the allocator's semantics — blocks are never denied for
// running low on it in ordinary operation — it only exists because
// [arena.Provider] needs an upper bound up front.
const arenaCap = 1 << 24

var headerSize = layout.Size[header]()

// Core is a free-list allocator over one incrementally growing arena.
//
// A zero Core is not ready to use; construct one with [NewCore]. A Core
// is not safe for concurrent use: it takes no locks, so calls on one Core
// must not overlap.
type Core struct {
	_ xunsafe.NoCopy

	arena *arena.Provider

	head, tail xunsafe.Addr[header] // all-blocks list, address order
	freeHead   xunsafe.Addr[header] // free list, address order
}

// NewCore returns a Core whose arena is reserved lazily, on the first
// allocation that cannot be satisfied from the (initially empty) free
// list.
func NewCore() *Core {
	return &Core{arena: arena.NewProvider(arenaCap)}
}

// dataOf returns the address of the user-visible region of the block at
// addr, immediately past its header.
func dataOf(addr xunsafe.Addr[header]) xunsafe.Addr[byte] {
	return xunsafe.CastAddr[byte](addr).ByteAdd(headerSize)
}

// headerOf recovers the header address for a pointer previously returned
// by [Core.Alloc].
func headerOf(ptr xunsafe.Addr[byte]) xunsafe.Addr[header] {
	return xunsafe.CastAddr[header](ptr.ByteAdd(-headerSize))
}

// newNode extends the arena by one block able to hold size bytes,
// appends it to the all-blocks list, and returns its user-visible
// region. The new block is never linked into the free list: it is
// handed back to the caller already busy.
func (c *Core) newNode(size int) xunsafe.Addr[byte] {
	addr := c.arena.Extend(headerSize + size)
	if addr.IsZero() {
		return 0
	}

	node := xunsafe.CastAddr[header](addr)
	h := node.AssertValid()
	h.size = size
	h.next = 0
	h.nextFree = 0

	if !c.tail.IsZero() {
		c.tail.AssertValid().next = node
	} else {
		c.head = node
	}
	c.tail = node

	return dataOf(node)
}

// split carves size bytes off the front of the block at node, which must
// be large enough (the caller is responsible for that check), creating a
// new block out of the remainder. The remainder joins the all-blocks
// list immediately after node and the free list in node's former
// position.
func (c *Core) split(node xunsafe.Addr[header], size int) {
	h := node.AssertValid()

	rest := node.ByteAdd(headerSize + size)
	r := rest.AssertValid()
	r.next = h.next
	r.size = h.size - size - headerSize

	h.next = rest
	r.nextFree = h.nextFree
	h.nextFree = rest

	if c.tail == node {
		c.tail = rest
	}

	h.size = size
}

// coalesce absorbs node's all-blocks neighbor into node, which must be
// node.next. node's size grows to cover the neighbor and one header;
// the neighbor's links are adopted.
func (c *Core) coalesce(node xunsafe.Addr[header]) {
	h := node.AssertValid()
	rm := h.next
	r := rm.AssertValid()

	h.size = h.size + headerSize + r.size
	h.nextFree = r.nextFree
	h.next = r.next

	if c.tail == rm {
		c.tail = node
	}
}
