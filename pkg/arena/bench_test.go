//go:build go1.22

package arena_test

import (
	"testing"

	"github.com/FarazRemi/heap-allocator/pkg/arena"
)

// BenchmarkProvider_Extend measures the steady-state cost of Extend once
// the underlying reservation has already been made.
func BenchmarkProvider_Extend(b *testing.B) {
	sizes := []int{16, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(sizeLabel(size), func(b *testing.B) {
			p := arena.NewProvider(b.N*size + size)
			p.Extend(size) // force the reservation outside the timed loop

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if p.Extend(size).IsZero() {
					b.Fatal("provider ran out of capacity")
				}
			}
		})
	}
}

// BenchmarkProvider_FirstExtend measures the one-time cost of the
// reservation itself, paid by whichever Extend call happens first.
func BenchmarkProvider_FirstExtend(b *testing.B) {
	const cap = 1 << 20

	for i := 0; i < b.N; i++ {
		p := arena.NewProvider(cap)
		p.Extend(64)
	}
}

func sizeLabel(n int) string {
	switch {
	case n >= 1024:
		return "1KiB"
	case n >= 256:
		return "256B"
	case n >= 64:
		return "64B"
	default:
		return "16B"
	}
}
