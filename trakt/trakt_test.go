package trakt

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/filesystem"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/source"
)

// stub redirects the package at a local test server for the duration of a test.
func stub(t *testing.T, handler http.Handler) {
	t.Helper()
	filesystem.SetMemMapFs()
	viper.Set(key.TraktClientID, "test-client-id")

	server := httptest.NewServer(handler)
	prevEndpoint, prevClient := apiEndpoint, httpClient
	apiEndpoint, httpClient = server.URL, server.Client()

	t.Cleanup(func() {
		apiEndpoint, httpClient = prevEndpoint, prevClient
		viper.Set(key.TraktClientID, "")
		server.Close()
	})
}

func TestRequestHeaders(t *testing.T) {
	Convey("Every catalog request carries the mandatory headers", t, func() {
		var gotVersion, gotKey string
		stub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotVersion = r.Header.Get("trakt-api-version")
			gotKey = r.Header.Get("trakt-api-key")
			fmt.Fprint(w, `[]`)
		}))

		_, err := Trending(source.Movie, 5)
		So(err, ShouldBeNil)
		So(gotVersion, ShouldEqual, "2")
		So(gotKey, ShouldEqual, "test-client-id")
	})

	Convey("A missing client id fails before any network traffic", t, func() {
		viper.Set(key.TraktClientID, "")

		_, err := Trending(source.Movie, 5)
		So(err, ShouldNotBeNil)
	})
}

func TestTrending(t *testing.T) {
	Convey("Trending decodes watcher-ordered media", t, func(c C) {
		stub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Path, ShouldEqual, "/shows/trending")
			fmt.Fprint(w, `[
				{"watchers": 120, "show": {"title": "Dark", "year": 2017, "ids": {"trakt": 104439}}},
				{"watchers": 80, "show": {"title": "Severance", "year": 2022, "ids": {"trakt": 158558}}}
			]`)
		}))

		media, err := Trending(source.Show, 5)
		So(err, ShouldBeNil)
		So(media, ShouldHaveLength, 2)
		So(media[0].Title, ShouldEqual, "Dark")
		So(media[0].TraktID, ShouldEqual, 104439)
		So(media[0].Watchers, ShouldEqual, 120)
		So(media[0].IsShow(), ShouldBeTrue)
	})
}

func TestSearch(t *testing.T) {
	Convey("Search discriminates movies and shows by payload type", t, func(c C) {
		viper.Set(key.SearchLimit, 10)
		stub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Query().Get("query"), ShouldEqual, "matrix")
			fmt.Fprint(w, `[
				{"type": "movie", "movie": {"title": "The Matrix", "year": 1999, "ids": {"trakt": 481}}},
				{"type": "show", "show": {"title": "The Matrix Unplugged", "year": 2003, "ids": {"trakt": 999}}},
				{"type": "person"}
			]`)
		}))

		media, err := Search("matrix")
		So(err, ShouldBeNil)
		So(media, ShouldHaveLength, 2)
		So(media[0].Type, ShouldEqual, source.Movie)
		So(media[1].Type, ShouldEqual, source.Show)
	})
}

func TestShowStructure(t *testing.T) {
	Convey("Seasons drops specials and keeps episode counts", t, func(c C) {
		stub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Path, ShouldEqual, "/shows/104439/seasons")
			fmt.Fprint(w, `[
				{"number": 0, "episode_count": 3},
				{"number": 1, "episode_count": 10, "first_aired": "2017-12-01T08:00:00.000Z"},
				{"number": 2, "episode_count": 8, "first_aired": "2019-06-21T07:00:00.000Z"}
			]`)
		}))

		seasons, err := Seasons(104439)
		So(err, ShouldBeNil)
		So(seasons, ShouldHaveLength, 2)
		So(seasons[0].Number, ShouldEqual, 1)
		So(seasons[1].EpisodeCount, ShouldEqual, 8)
	})

	Convey("Episodes decodes the season's episode list", t, func(c C) {
		stub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Path, ShouldEqual, "/shows/104439/seasons/1")
			fmt.Fprint(w, `[
				{"season": 1, "number": 1, "title": "Secrets"},
				{"season": 1, "number": 2, "title": "Lies"}
			]`)
		}))

		episodes, err := Episodes(104439, 1)
		So(err, ShouldBeNil)
		So(episodes, ShouldHaveLength, 2)
		So(episodes[1].Title, ShouldEqual, "Lies")
	})
}

func TestLatestAiredSeason(t *testing.T) {
	Convey("LatestAiredSeason resolves the newest aired, non-empty season", t, func() {
		future := time.Now().Add(time.Hour * 24 * 365).Format(time.RFC3339)
		seasons := []Season{
			{Number: 0, EpisodeCount: 2, FirstAired: "2017-12-01T08:00:00Z"},
			{Number: 1, EpisodeCount: 10, FirstAired: "2017-12-01T08:00:00Z"},
			{Number: 2, EpisodeCount: 8, FirstAired: "2019-06-21T07:00:00Z"},
			{Number: 3, EpisodeCount: 0, FirstAired: "2020-06-27T07:00:00Z"},
			{Number: 4, EpisodeCount: 8, FirstAired: future},
		}

		latest, ok := LatestAiredSeason(seasons).Get()
		So(ok, ShouldBeTrue)
		So(latest, ShouldEqual, 2)
	})

	Convey("No aired seasons yields none", t, func() {
		So(LatestAiredSeason(nil).IsAbsent(), ShouldBeTrue)
	})
}
