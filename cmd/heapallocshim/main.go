// Command heapallocshim builds a C shared object exposing malloc, free,
// calloc, and realloc under C linkage, backed by pkg/allocator.
//
// Built with `go build -buildmode=c-shared` (optionally with `-tags
// buddy` to select the buddy core instead of the free-list core), the
// resulting .so can be loaded ahead of the platform's libc via
// LD_PRELOAD (Linux) or DYLD_INSERT_LIBRARIES (Darwin) to replace the
// process's allocator wholesale. Because cgo's own marshaling may route
// through the C allocator it is overriding, this shim is kept as thin as
// possible: every exported function does nothing but translate argument
// types and forward to pkg/allocator.
package main

import "C"

import (
	"unsafe"

	"github.com/FarazRemi/heap-allocator/pkg/allocator"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

//export malloc
func malloc(size C.size_t) unsafe.Pointer {
	return unsafe.Pointer(allocator.Alloc(int(size)).AssertValid())
}

//export free
func free(ptr unsafe.Pointer) {
	allocator.Release(xunsafe.AddrOf((*byte)(ptr)))
}

//export calloc
func calloc(nitems, size C.size_t) unsafe.Pointer {
	return unsafe.Pointer(allocator.AllocZeroed(int(nitems), int(size)).AssertValid())
}

//export realloc
func realloc(ptr unsafe.Pointer, size C.size_t) unsafe.Pointer {
	addr := xunsafe.AddrOf((*byte)(ptr))
	return unsafe.Pointer(allocator.Resize(addr, int(size)).AssertValid())
}

func main() {}
