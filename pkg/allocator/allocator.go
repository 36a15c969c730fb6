// Package allocator is the shared entry point over the two allocator
// cores, pkg/buddy and pkg/freelist.
//
// Exactly one core is linked into any given build, selected by the
// "buddy" build tag (see core_buddy.go and core_freelist.go): there is
// no runtime switch between them. Both cores expose the same three
// operations — Alloc, Release, Resize — and this package forwards to
// whichever one was linked in; AllocZeroed is built here on top of Alloc.
// The core is constructed at package initialization and reserves its
// arena on first use.
package allocator

import (
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

// core is the interface both pkg/buddy.Core and pkg/freelist.Core
// satisfy.
type core interface {
	Alloc(size int) xunsafe.Addr[byte]
	Release(ptr xunsafe.Addr[byte])
	Resize(ptr xunsafe.Addr[byte], newSize int) xunsafe.Addr[byte]
}

var theCore core = newCore()

// Alloc reserves size bytes and returns the address of the user-visible
// region, or the zero address if size is zero or the core has no room.
func Alloc(size int) xunsafe.Addr[byte] { return theCore.Alloc(size) }

// Release frees the block backing ptr. The zero address is a no-op;
// releasing a pointer not returned by Alloc, or releasing it twice, is
// undefined.
func Release(ptr xunsafe.Addr[byte]) { theCore.Release(ptr) }

// AllocZeroed reserves room for n elements of size bytes each and zeroes
// the returned region. No overflow check is performed on n*size.
func AllocZeroed(n, size int) xunsafe.Addr[byte] {
	total := n * size

	p := Alloc(total)
	if p.IsZero() {
		return p
	}

	xunsafe.Clear(p.AssertValid(), total)
	return p
}

// Resize changes the block backing ptr to hold newSize bytes, in place
// when the core can manage it, or via a fresh allocation and copy
// otherwise. A nil ptr behaves as Alloc; a newSize of zero behaves as
// Release and returns the zero address.
func Resize(ptr xunsafe.Addr[byte], newSize int) xunsafe.Addr[byte] {
	return theCore.Resize(ptr, newSize)
}
