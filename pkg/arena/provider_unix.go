//go:build unix

package arena

import (
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
	"golang.org/x/sys/unix"
)

// reserve maps n bytes of anonymous, zero-filled memory and returns its
// base address.
//
// A single mmap call is the closest portable analogue to sbrk(2) available
// without cgo: the kernel reserves n bytes of virtual address space
// up front, but only commits physical pages as they are first touched, so
// requesting a generous n (as the free-list core does) is cheap.
//
// Returns the zero address if the mapping could not be made. The memory
// backing the returned address is owned by the kernel, not the Go
// runtime, so unlike [Provider.held] on the fallback path, nothing needs
// to be kept alive for the GC's sake.
func reserve(n int) (xunsafe.Addr[byte], any) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return 0, nil
	}

	return xunsafe.AddrOf(&b[0]), nil
}
