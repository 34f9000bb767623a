package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Semantic version comparison", t, func() {
		Convey("Orders by major, minor, patch", func() {
			cases := []struct {
				a, b string
				want int
			}{
				{"1.0.0", "1.0.0", 0},
				{"2.0.0", "1.9.9", 1},
				{"1.2.0", "1.10.0", -1},
				{"1.0.1", "1.0.0", 1},
			}

			for _, c := range cases {
				got, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("Accepts a leading v", func() {
			got, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 0)
		})

		Convey("Rejects malformed versions", func() {
			_, err := Compare("banana", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
