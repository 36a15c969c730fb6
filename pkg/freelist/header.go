package freelist

import "github.com/FarazRemi/heap-allocator/pkg/xunsafe"

// header prefixes every block in the arena.
//
// A block is free if and only if it is reachable by walking next-free
// links from the Core's free-list head; busy/free is not a flag stored
// in the header itself.
type header struct {
	size     int
	next     xunsafe.Addr[header] // next block in arena order, or the zero address
	nextFree xunsafe.Addr[header] // next free block in address order, or the zero address
}
