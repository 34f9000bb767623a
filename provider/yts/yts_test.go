package yts

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsan-cli/streamsan/source"
)

func testClient(handler http.HandlerFunc) (*YTS, func()) {
	srv := httptest.NewServer(handler)
	return &YTS{endpoint: srv.URL, client: srv.Client()}, srv.Close
}

func TestSearch(t *testing.T) {
	Convey("YTS search", t, func() {
		Convey("Should flatten nested movie torrents into candidates", func(c C) {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Query().Get("query_term"), ShouldEqual, "The Matrix")
				w.Write([]byte(`{"status":"ok","data":{"movie_count":1,"movies":[{
					"title_long":"The Matrix (1999)","year":1999,"torrents":[
						{"url":"http://example/t1","hash":"aa11","quality":"1080p","seeds":120,"size_bytes":2000},
						{"url":"http://example/t2","hash":"bb22","quality":"2160p","seeds":15,"size_bytes":9000}
					]}]}}`))
			})
			defer done()

			candidates, err := idx.Search(source.NewQuery("The Matrix", 0, 0))
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 2)
			So(candidates[0].Name, ShouldEqual, "The Matrix (1999) 1080p YTS")
			So(candidates[0].Seeders, ShouldEqual, 120)
			So(candidates[1].InfoHash, ShouldEqual, "bb22")
		})

		Convey("Only the bare title is sent; season targets are ignored", func(c C) {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Query().Get("query_term"), ShouldEqual, "Dark")
				w.Write([]byte(`{"status":"ok","data":{"movie_count":0,"movies":[]}}`))
			})
			defer done()

			candidates, err := idx.Search(source.NewQuery("Dark", 2, 5))
			So(err, ShouldBeNil)
			So(candidates, ShouldBeEmpty)
		})

		Convey("Zero movie count is an empty batch, not an error", func() {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ok","data":{"movie_count":0,"movies":[]}}`))
			})
			defer done()

			candidates, err := idx.Search(source.NewQuery("Nonexistent", 0, 0))
			So(err, ShouldBeNil)
			So(candidates, ShouldBeEmpty)
		})

		Convey("Torrents without a hash are skipped", func() {
			idx, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ok","data":{"movie_count":1,"movies":[{
					"title_long":"The Matrix (1999)","torrents":[{"hash":"","quality":"720p","seeds":3}]}]}}`))
			})
			defer done()

			candidates, err := idx.Search(source.NewQuery("The Matrix", 0, 0))
			So(err, ShouldBeNil)
			So(candidates, ShouldBeEmpty)
		})
	})
}
