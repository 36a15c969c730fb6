// Package xunsafe provides a more convenient interface for performing unsafe
// operations than Go's built-in package unsafe.
package xunsafe

import (
	"sync"

	"github.com/FarazRemi/heap-allocator/pkg/xunsafe/layout"
)

// NoCopy is a type that go vet will complain about having been moved.
//
// It does so by being an array of [sync.Mutex], which vet's copylocks
// check treats as a lock.
type NoCopy [0]sync.Mutex

// Int is any integer type.
type Int = layout.Int
