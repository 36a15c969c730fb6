//go:build !unix

package arena

import "github.com/FarazRemi/heap-allocator/pkg/xunsafe"

// reserve allocates n bytes from the Go heap and returns its base address.
//
// Platforms without an mmap-like primitive (or without the unix build tag)
// fall back to a single, never-resized Go allocation. Go's allocator will
// not move the bytes once made (no compacting GC), so the contiguity
// guarantee [Provider.Extend] promises still holds. The slice is also
// returned so the caller can keep it reachable: Go's GC does not know
// about the uintptr-typed [xunsafe.Addr] alone.
func reserve(n int) (xunsafe.Addr[byte], any) {
	b := make([]byte, n)
	return xunsafe.AddrOf(&b[0]), b
}
