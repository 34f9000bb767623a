package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/filesystem"
	"github.com/streamsan-cli/streamsan/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		Convey("When remembering queries", func() {
			So(Remember("the matrix", 1), ShouldBeNil)
			So(Remember("the wire", 10), ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				// Drop the in-memory layer to force a read from the store.
				suggestionCache = make(map[string][]*queryRecord)
				viper.Set(key.SearchShowQuerySuggestions, true)

				s := SuggestMany("the")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
				So(s[0], ShouldEqual, "the wire")
			})

			Convey("Suggest returns the single best match", func() {
				suggestionCache = make(map[string][]*queryRecord)

				best, ok := Suggest("wire").Get()
				So(ok, ShouldBeTrue)
				So(best, ShouldEqual, "the wire")
			})

			Convey("It sanitizes input", func() {
				So(sanitize("  The MATRIX  "), ShouldEqual, "the matrix")
			})
		})

		Convey("Suggestions can be switched off", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(SuggestMany("the"), ShouldBeEmpty)
		})
	})
}
