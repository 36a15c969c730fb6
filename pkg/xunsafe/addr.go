//go:build go1.20

package xunsafe

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/FarazRemi/heap-allocator/pkg/xunsafe/layout"
)

// Addr is an untraced address: a pointer value with no write barrier
// associated with loading or storing it.
//
// Unlike a real pointer, an Addr can be zero, in which case it does not
// point to valid memory; use [Addr.AssertValid] to convert it back into a
// real pointer once it has been checked.
type Addr[T any] uintptr

// AddrOf returns the address of p.
func AddrOf[P ~*E, E any](p P) Addr[E] {
	return Addr[E](uintptr(unsafe.Pointer(p)))
}

// Add adds n*sizeof(T) bytes to a, returning the new address.
func (a Addr[T]) Add(n int) Addr[T] {
	return a + Addr[T](n*layout.Size[T]())
}

// ByteAdd adds n bytes to a, without scaling by sizeof(T).
func (a Addr[T]) ByteAdd(n int) Addr[T] {
	return a + Addr[T](n)
}

// Sub computes the number of T-sized steps between a and b.
func (a Addr[T]) Sub(b Addr[T]) int {
	return int(a-b) / layout.Size[T]()
}

// ByteSub computes the raw byte difference between a and b.
func (a Addr[T]) ByteSub(b Addr[T]) int {
	return int(a - b)
}

// IsZero returns whether this is the zero address.
func (a Addr[T]) IsZero() bool { return a == 0 }

// AssertValid converts this address into a real pointer.
//
// Returns nil if a is the zero address.
func (a Addr[T]) AssertValid() *T {
	if a == 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(uintptr(a)))
}

// CastAddr reinterprets this address as pointing to a value of a different type.
func CastAddr[To, From any](a Addr[From]) Addr[To] { return Addr[To](a) }

// Padding returns the number of bytes needed to round a up to align, which
// must be a power of two.
func (a Addr[T]) Padding(align int) int {
	v := int(a)
	return (align - v) & (align - 1)
}

// RoundUpTo rounds a up to the given power-of-two alignment.
func (a Addr[T]) RoundUpTo(align int) Addr[T] {
	return Addr[T]((int(a) + align - 1) &^ (align - 1))
}

// SignBit returns the value of the top bit of this address, used to tag
// addresses that do not point into a managed arena.
func (a Addr[T]) SignBit() bool {
	return uintptr(a)>>(bits.UintSize-1) != 0
}

// SignBitMask returns an all-ones mask if [Addr.SignBit] is set, else zero.
func (a Addr[T]) SignBitMask() Addr[T] {
	if a.SignBit() {
		return ^Addr[T](0)
	}
	return 0
}

// ClearSignBit returns a with the top bit cleared.
func (a Addr[T]) ClearSignBit() Addr[T] {
	return a &^ (Addr[T](1) << (bits.UintSize - 1))
}

// String implements [fmt.Stringer].
func (a Addr[T]) String() string {
	return fmt.Sprintf("%#x", uintptr(a))
}
