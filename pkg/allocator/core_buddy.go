//go:build buddy

package allocator

import "github.com/FarazRemi/heap-allocator/pkg/buddy"

func newCore() core { return buddy.NewCore() }
