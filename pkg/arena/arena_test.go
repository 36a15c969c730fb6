//go:build go1.22

package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/FarazRemi/heap-allocator/pkg/arena"
	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

func TestProvider(t *testing.T) {
	Convey("Given a new Provider", t, func() {
		p := arena.NewProvider(4096)

		Convey("Then it reports its capacity up front", func() {
			So(p.Cap(), ShouldEqual, 4096)
		})

		Convey("Then nothing has been used yet", func() {
			So(p.Used(), ShouldEqual, 0)
			So(p.Base().IsZero(), ShouldBeTrue)
		})

		Convey("When extending for the first time", func() {
			addr := p.Extend(128)

			Convey("Then the returned address is valid", func() {
				So(addr.IsZero(), ShouldBeFalse)
			})

			Convey("Then it becomes the provider's base address", func() {
				So(p.Base(), ShouldEqual, addr)
			})

			Convey("Then used grows by the extended amount", func() {
				So(p.Used(), ShouldEqual, 128)
			})
		})

		Convey("When extending more than once", func() {
			first := p.Extend(128)
			second := p.Extend(256)

			Convey("Then the extensions are contiguous", func() {
				So(second, ShouldEqual, first.ByteAdd(128))
			})

			Convey("Then used accumulates across extensions", func() {
				So(p.Used(), ShouldEqual, 128+256)
			})

			Convey("Then base stays fixed at the first extension", func() {
				So(p.Base(), ShouldEqual, first)
			})
		})

		Convey("When extending past capacity", func() {
			p.Extend(4000)
			addr := p.Extend(200)

			Convey("Then the zero address is returned", func() {
				So(addr.IsZero(), ShouldBeTrue)
			})

			Convey("Then used is unaffected by the failed extension", func() {
				So(p.Used(), ShouldEqual, 4000)
			})
		})

		Convey("When extending exactly to capacity", func() {
			addr := p.Extend(4096)

			Convey("Then it succeeds", func() {
				So(addr.IsZero(), ShouldBeFalse)
				So(p.Used(), ShouldEqual, 4096)
			})

			Convey("Then a further extension fails", func() {
				So(p.Extend(1).IsZero(), ShouldBeTrue)
			})
		})
	})
}

func TestProviderSequentialExtend(t *testing.T) {
	Convey("Given a Provider extended many times by its single caller", t, func() {
		const rounds = 100

		p := arena.NewProvider(rounds * 64)

		var last xunsafe.Addr[byte]
		for i := 0; i < rounds; i++ {
			addr := p.Extend(64)
			So(addr.IsZero(), ShouldBeFalse)
			if i > 0 {
				So(addr, ShouldEqual, last.ByteAdd(64))
			}
			last = addr
		}

		Convey("Then used reflects every extension", func() {
			So(p.Used(), ShouldEqual, rounds*64)
		})
	})
}
