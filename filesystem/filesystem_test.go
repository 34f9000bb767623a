package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitching(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		SetMemMapFs()
		defer SetOsFs()

		Convey("Should write and read through the in-memory backend", func() {
			So(API().WriteFile("/probe.txt", []byte("ok"), 0644), ShouldBeNil)

			data, err := API().ReadFile("/probe.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "ok")
		})
	})
}
