//go:build !buddy

package allocator

import "github.com/FarazRemi/heap-allocator/pkg/freelist"

func newCore() core { return freelist.NewCore() }
