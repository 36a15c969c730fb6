package buddy

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCheckInvariants(t *testing.T) {
	Convey("Given a fresh Core", t, func() {
		c := NewCore()

		Convey("Before any allocation, the invariants hold", func() {
			c.init()
			So(c.checkInvariants(), ShouldBeTrue)
		})

		Convey("After allocating and splitting blocks, the invariants hold", func() {
			a := c.Alloc(16)
			b := c.Alloc(16)
			So(a.IsZero(), ShouldBeFalse)
			So(b.IsZero(), ShouldBeFalse)
			So(c.checkInvariants(), ShouldBeTrue)
		})

		Convey("After releasing and coalescing, the invariants hold", func() {
			a := c.Alloc(16)
			b := c.Alloc(16)
			c.Release(a)
			c.Release(b)
			So(c.checkInvariants(), ShouldBeTrue)
		})

		Convey("A block manually marked free next to an equal-order free buddy violates the invariant", func() {
			a := c.Alloc(16)
			b := c.Alloc(16)
			So(a.IsZero(), ShouldBeFalse)
			So(b.IsZero(), ShouldBeFalse)

			headerOf(a).AssertValid().free = true
			headerOf(b).AssertValid().free = true

			So(c.checkInvariants(), ShouldBeFalse)
		})
	})
}
