// Package arena provides the allocator's arena provider: a single
// contiguous, monotonically growing byte region obtained from the OS and
// shared by both the buddy and free-list cores.
//
// An arena never shrinks and is never unmapped; it models a C allocator's
// program break (the region grown by sbrk(2)) using a single reservation
// made once, lazily, on first use. Both cores carve their own headers and
// blocks out of the bytes an arena hands back; the arena itself knows
// nothing about headers, orders, or free lists.
//
// # Design
//
// [Provider] reserves cap bytes of address space up front (see
// [NewProvider]) and then hands out sequential, non-overlapping slices of
// it via [Provider.Extend]. Because the whole reservation is one mapping,
// any two addresses returned by the same Provider are always comparable
// and contiguous in the order they were extended, which is the property
// both cores' address-ordered invariants (§3 of the spec) depend on.
package arena

import (
	"fmt"
	"sync"

	"github.com/FarazRemi/heap-allocator/internal/debug"
	"github.com/FarazRemi/heap-allocator/pkg/res"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// ExhaustedError reports that a Provider could not satisfy an Extend
// call because doing so would overrun its reserved capacity.
type ExhaustedError struct {
	Cap, Used, Requested int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("arena: capacity exhausted: used=%d requested=%d cap=%d", e.Used, e.Requested, e.Cap)
}

// Provider is a monotonically growing arena of raw bytes.
//
// A zero Provider is not ready to use; construct one with [NewProvider].
type Provider struct {
	_ xunsafe.NoCopy

	once sync.Once
	cap  int // Total reserved bytes; fixed after the first Extend.

	base xunsafe.Addr[byte]
	used int

	// held keeps the reservation reachable for the GC on platforms where
	// reserve's backing memory is itself Go-managed (see
	// provider_fallback.go). It is nil on platforms where reserve returns
	// memory the GC does not own, such as an mmap mapping.
	held any
}

// NewProvider returns a Provider that will reserve up to cap bytes of
// address space the first time [Provider.Extend] is called.
//
// cap bounds the provider's lifetime growth: it plays the role of the
// maximum extent a real process's program break could reach. Passing a
// generous cap (the free-list core does; the buddy core passes exactly
// N) costs no physical memory up front on platforms where [reserve] is
// backed by mmap, since pages are not committed until touched.
func NewProvider(cap int) *Provider {
	debug.Assert(cap > 0, "arena: capacity must be positive, got %d", cap)
	return &Provider{cap: cap}
}

// Extend reserves n more bytes, contiguous with every prior extension, and
// returns the address of the first of them.
//
// Extend returns the zero [xunsafe.Addr] if n would overrun the
// provider's reserved capacity — the arena-provider analogue of
// alloc_failed (§7 of the spec). The arena itself is otherwise
// infallible: once reserved, it never refuses a request that fits.
//
// Internally Extend is a thin, nil-on-Err unwrap of [Provider.extendResult];
// callers that want the failure reason (tests, mainly) can call that
// directly and recover it with [pkg/xerrors.AsA].
func (p *Provider) Extend(n int) xunsafe.Addr[byte] {
	r := p.extendResult(n)
	if r.IsErr() {
		return 0
	}
	return r.Unwrap()
}

// extendResult is [Provider.Extend] with its failure reason preserved as
// a typed error instead of being collapsed to the zero address.
func (p *Provider) extendResult(n int) res.Result[xunsafe.Addr[byte]] {
	p.once.Do(func() {
		p.base, p.held = reserve(p.cap)
		debug.Log(nil, "reserve", "%v:%d", p.base, p.cap)
	})

	if p.base.IsZero() || p.used+n > p.cap {
		err := &ExhaustedError{Cap: p.cap, Used: p.used, Requested: n}
		debug.Log(nil, "extend failed", "%s", err)
		return res.Err[xunsafe.Addr[byte]](err)
	}

	addr := p.base.ByteAdd(p.used)
	p.used += n
	debug.Log(nil, "extend", "%v", debug.Dict(addr, "n", n, "used", p.used))
	return res.Ok(addr)
}

// Cap returns the total number of bytes this provider may ever hand out.
func (p *Provider) Cap() int { return p.cap }

// Used returns the number of bytes handed out so far.
func (p *Provider) Used() int { return p.used }

// Base returns the address of the first byte ever extended, or the zero
// address if nothing has been extended yet.
func (p *Provider) Base() xunsafe.Addr[byte] { return p.base }
