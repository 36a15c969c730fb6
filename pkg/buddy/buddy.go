// Package buddy implements a power-of-two buddy allocator over a single,
// fixed-size arena.
//
// The arena is reserved once, lazily, as N contiguous bytes carved into
// blocks whose size is always Base*2^order for some order in [0,
// MaxOrder]. Allocation splits a larger free block in half until it
// matches the requested order; release walks back up, coalescing a freed
// block with its buddy whenever both are free and share an order. See
// [Core] for the entry points.
package buddy

import (
	"sync"

	"github.com/FarazRemi/heap-allocator/internal/debug"
	"github.com/FarazRemi/heap-allocator/pkg/arena"
	"github.com/FarazRemi/heap-allocator/pkg/opt"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe/layout"
)

const (
	// Base is the smallest block size in bytes, header included.
	Base = 128

	// N is the total arena size in bytes: 8 MiB, matching the default
	// heap size this core was modeled on.
	N = 1 << 23

	// MaxOrder is the order of the whole arena as a single block:
	// log2(N/Base).
	MaxOrder = 16
)

var headerSize = layout.Size[header]()

// Core is a buddy allocator over one fixed-size arena.
//
// A zero Core is not ready to use; construct one with [NewCore]. A Core
// is not safe for concurrent use: it takes no locks, so calls on one Core
// must not overlap.
type Core struct {
	_ xunsafe.NoCopy

	arena *arena.Provider
	base  xunsafe.Addr[header]
	once  sync.Once
}

// NewCore returns a Core whose arena is reserved lazily, on the first
// call to [Core.Alloc].
func NewCore() *Core {
	return &Core{arena: arena.NewProvider(N)}
}

// init reserves the arena and writes the initial single free block
// spanning it. Safe to call repeatedly; only the first call has effect.
func (c *Core) init() {
	c.once.Do(func() {
		addr := c.arena.Extend(N)
		if addr.IsZero() {
			return
		}

		c.base = xunsafe.CastAddr[header](addr)

		root := c.base.AssertValid()
		root.order = MaxOrder
		root.side = left
		root.free = true

		debug.Log(nil, "init", "base=%v order=%d", c.base, MaxOrder)
	})
}

// blockSize returns the byte size, header included, of a block of the
// given order.
func blockSize(order int) int { return Base << uint(order) }

// sizeToOrder returns the smallest order whose block can hold size bytes
// of user data plus one header.
func sizeToOrder(size int) int {
	need := size + headerSize
	if need <= Base {
		return 0
	}

	order := 0
	for blockSize(order) < need {
		order++
	}
	return order
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

// findBlock scans the arena for a free block of exactly order, widening
// the search to larger orders if none is found. Returns [opt.None] if the
// arena has nothing free at or above order.
func (c *Core) findBlock(order int) opt.Option[xunsafe.Addr[header]] {
	end := c.base.ByteAdd(N)

	for o := order; o <= MaxOrder; o++ {
		step := blockSize(o)
		addr := c.base

		for addr < end {
			h := addr.AssertValid()

			switch {
			case h.free && int(h.order) == o:
				return opt.Some(addr)
			case int(h.order) > o:
				addr = addr.ByteAdd(blockSize(int(h.order)))
			default:
				addr = addr.ByteAdd(step)
			}
		}
	}

	return opt.None[xunsafe.Addr[header]]()
}

// split halves the block at addr, which must be free with order > 0,
// writing a new RIGHT sibling header in the upper half. addr keeps the
// lower half and becomes LEFT.
func (c *Core) split(addr xunsafe.Addr[header]) {
	h := addr.AssertValid()
	debug.Assert(h.free, "buddy: split of a busy block")
	debug.Assert(h.order > 0, "buddy: split of an order-0 block")

	h.order--

	sibling := addr.ByteAdd(blockSize(int(h.order)))
	s := sibling.AssertValid()
	s.order = h.order
	s.side = right
	s.free = true

	h.side = left
	h.free = true
}

// coalesce merges the block at addr with its buddy, doubling its size.
// addr's new side is recomputed from its offset within the arena.
func (c *Core) coalesce(addr xunsafe.Addr[header]) {
	h := addr.AssertValid()
	h.order++

	offset := addr.ByteSub(c.base)
	h.side = side((offset / blockSize(int(h.order))) % 2)
}
