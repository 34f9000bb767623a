package piratebay

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsan-cli/streamsan/source"
)

func testClient(handler http.HandlerFunc) (*PirateBay, func()) {
	srv := httptest.NewServer(handler)
	return &PirateBay{endpoint: srv.URL, client: srv.Client()}, srv.Close
}

func TestSearch(t *testing.T) {
	Convey("PirateBay search", t, func() {
		Convey("Should decode raw records into candidates", func(c C) {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Query().Get("q"), ShouldEqual, "Dark S01E02")
				w.Write([]byte(`[
					{"id":"1","name":"Dark.S01E02.1080p","info_hash":"aa11","seeders":"42","size":"1000"},
					{"id":"2","name":"Dark.S01E02.720p","info_hash":"bb22","seeders":"7","size":"500"}
				]`))
			})
			defer done()

			candidates, err := idx.Search(source.NewQuery("Dark", 1, 2))
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 2)
			So(candidates[0].Name, ShouldEqual, "Dark.S01E02.1080p")
			So(candidates[0].Seeders, ShouldEqual, 42)
			So(candidates[0].InfoHash, ShouldEqual, "aa11")
			So(candidates[1].Size, ShouldEqual, 500)
		})

		Convey("Sentinel id 0 means zero candidates, not an error", func() {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"id":"0","name":"No results returned","info_hash":"0000000000000000000000000000000000000000","seeders":"0"}]`))
			})
			defer done()

			candidates, err := idx.Search(source.NewQuery("Nonexistent", 0, 0))
			So(err, ShouldBeNil)
			So(candidates, ShouldBeEmpty)
		})

		Convey("Records missing required fields are skipped", func() {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[
					{"id":"1","name":"","info_hash":"aa11","seeders":"42"},
					{"id":"2","name":"Dark.1080p","info_hash":"","seeders":"9"},
					{"id":"3","name":"Dark.720p","info_hash":"cc33","seeders":"notanumber"}
				]`))
			})
			defer done()

			candidates, err := idx.Search(source.NewQuery("Dark", 0, 0))
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 1)
			So(candidates[0].Name, ShouldEqual, "Dark.720p")
			So(candidates[0].Seeders, ShouldEqual, 0)
		})

		Convey("Malformed payloads surface as errors for the aggregator to absorb", func() {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			})
			defer done()

			_, err := idx.Search(source.NewQuery("Dark", 0, 0))
			So(err, ShouldNotBeNil)
		})

		Convey("Non-200 statuses surface as errors", func() {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			})
			defer done()

			_, err := idx.Search(source.NewQuery("Dark", 0, 0))
			So(err, ShouldNotBeNil)
		})
	})
}
