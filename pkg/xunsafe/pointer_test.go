package xunsafe_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/FarazRemi/heap-allocator/pkg/xunsafe"
)

func TestPointer(t *testing.T) {
	Convey("Given pointer memory operations", t, func() {
		Convey("When copying elements between arrays", func() {
			src := [5]int{1, 2, 3, 4, 5}
			dst := [5]int{0, 0, 0, 0, 0}

			xunsafe.Copy(&dst[0], &src[0], 5)
			So(dst, ShouldEqual, src)

			dst2 := [5]int{0, 0, 0, 0, 0}
			xunsafe.Copy(&dst2[0], &src[0], 3)
			So(dst2[0], ShouldEqual, 1)
			So(dst2[1], ShouldEqual, 2)
			So(dst2[2], ShouldEqual, 3)
			So(dst2[3], ShouldEqual, 0)
			So(dst2[4], ShouldEqual, 0)
		})

		Convey("When clearing elements", func() {
			arr := [5]int{1, 2, 3, 4, 5}

			xunsafe.Clear(&arr[0], 3)
			So(arr[0], ShouldEqual, 0)
			So(arr[1], ShouldEqual, 0)
			So(arr[2], ShouldEqual, 0)
			So(arr[3], ShouldEqual, 4)
			So(arr[4], ShouldEqual, 5)

			xunsafe.Clear(&arr[0], 5)
			So(arr[3], ShouldEqual, 0)
			So(arr[4], ShouldEqual, 0)
		})
	})
}
