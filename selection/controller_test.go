package selection

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsan-cli/streamsan/score"
	"github.com/streamsan-cli/streamsan/source"
)

type fakeIndex struct {
	name       string
	moviesOnly bool
	candidates []*source.Candidate
	calls      int
}

func (f *fakeIndex) Name() string     { return f.name }
func (f *fakeIndex) MoviesOnly() bool { return f.moviesOnly }
func (f *fakeIndex) Search(source.Query) ([]*source.Candidate, error) {
	f.calls++
	// Fresh copies: the aggregator mutates candidates in place.
	out := make([]*source.Candidate, len(f.candidates))
	for i, c := range f.candidates {
		clone := *c
		out[i] = &clone
	}
	return out, nil
}

func movie(title string) *source.Media {
	return &source.Media{Type: source.Movie, Title: title}
}

func show(title string) *source.Media {
	return &source.Media{Type: source.Show, Title: title}
}

func TestSelectFallback(t *testing.T) {
	Convey("Provider fallback policy", t, func() {
		engine := score.NewEngine(score.DefaultWeights)

		Convey("Movies fall back to the secondary exactly once when the primary is empty", func() {
			primary := &fakeIndex{name: "piratebay"}
			secondary := &fakeIndex{name: "yts", moviesOnly: true, candidates: []*source.Candidate{
				{Name: "The Matrix (1999) 1080p YTS", InfoHash: "aa", Seeders: 30},
			}}

			controller := New(primary, secondary, 5, engine)
			result := controller.Select(movie("The Matrix"), 0, 0)

			So(primary.calls, ShouldEqual, 1)
			So(secondary.calls, ShouldEqual, 1)
			So(result.Empty(), ShouldBeFalse)
			So(result.Candidates[0].Provider, ShouldEqual, "yts")
		})

		Convey("Shows never consult the secondary", func() {
			primary := &fakeIndex{name: "piratebay"}
			secondary := &fakeIndex{name: "yts", moviesOnly: true, candidates: []*source.Candidate{
				{Name: "whatever", InfoHash: "aa", Seeders: 30},
			}}

			controller := New(primary, secondary, 5, engine)
			result := controller.Select(show("Dark"), 1, 2)

			So(primary.calls, ShouldEqual, 1)
			So(secondary.calls, ShouldEqual, 0)
			So(result.Empty(), ShouldBeTrue)
		})

		Convey("A productive primary suppresses the fallback", func() {
			primary := &fakeIndex{name: "piratebay", candidates: []*source.Candidate{
				{Name: "The.Matrix.1999.1080p", InfoHash: "bb", Seeders: 50},
			}}
			secondary := &fakeIndex{name: "yts", moviesOnly: true}

			controller := New(primary, secondary, 5, engine)
			result := controller.Select(movie("The Matrix"), 0, 0)

			So(secondary.calls, ShouldEqual, 0)
			So(result.Candidates[0].Provider, ShouldEqual, "piratebay")
		})

		Convey("Empty everywhere is a normal no-viable-source outcome", func() {
			controller := New(&fakeIndex{name: "piratebay"}, &fakeIndex{name: "yts", moviesOnly: true}, 5, engine)
			result := controller.Select(movie("Obscurity"), 0, 0)

			So(result.Empty(), ShouldBeTrue)
			So(result.Best().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestSelectRanking(t *testing.T) {
	Convey("Selection ranks by the weighted score, not a single factor", t, func() {
		engine := score.NewEngine(score.DefaultWeights)
		primary := &fakeIndex{name: "piratebay", candidates: []*source.Candidate{
			{Name: "Matrix.1999.1080p", InfoHash: "aa", Seeders: 50},
			{Name: "The.Matrix.2160p.REMUX", InfoHash: "bb", Seeders: 10},
		}}

		controller := New(primary, nil, 5, engine)
		result := controller.Select(movie("Matrix"), 0, 0)

		So(result.Candidates, ShouldHaveLength, 2)
		So(result.Candidates[0].Score, ShouldBeGreaterThanOrEqualTo, result.Candidates[1].Score)

		best, ok := result.Best().Get()
		So(ok, ShouldBeTrue)
		So(best, ShouldEqual, result.Candidates[0])
	})

	Convey("Season/episode targets shape the query used for ranking", t, func() {
		engine := score.NewEngine(score.DefaultWeights)
		primary := &fakeIndex{name: "piratebay", candidates: []*source.Candidate{
			{Name: "Dark.S01.Complete", InfoHash: "aa", Seeders: 80},
			{Name: "Dark.S01E02.1080p", InfoHash: "bb", Seeders: 40},
		}}

		controller := New(primary, nil, 5, engine)
		result := controller.Select(show("Dark"), 1, 2)

		So(result.Query.String(), ShouldEqual, "Dark S01E02")
		// The exact-episode release outranks the season pack despite fewer seeders.
		So(result.Candidates[0].Name, ShouldEqual, "Dark.S01E02.1080p")
	})
}
