package score

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsan-cli/streamsan/source"
)

func TestQualityScore(t *testing.T) {
	Convey("Quality sub-score", t, func() {
		Convey("Should follow the tier priority order", func() {
			So(qualityScore("Movie.2160p.REMUX"), ShouldEqual, 1.0)
			So(qualityScore("Movie.4K.HDR"), ShouldEqual, 1.0)
			So(qualityScore("Movie.1080p.WEB-DL"), ShouldEqual, 0.8)
			So(qualityScore("Movie.720p.HDTV"), ShouldEqual, 0.6)
			So(qualityScore("Movie.DVDRip"), ShouldEqual, 0.3)
		})

		Convey("First match wins when multiple tokens are present", func() {
			So(qualityScore("Movie.2160p.1080p"), ShouldEqual, 1.0)
		})

		Convey("Should be case-insensitive", func() {
			So(qualityScore("MOVIE.1080P"), ShouldEqual, 0.8)
		})

		Convey("2160p never scores lower than 1080p-only", func() {
			So(qualityScore("A.2160p"), ShouldBeGreaterThanOrEqualTo, qualityScore("B.1080p"))
		})
	})
}

func TestSeedersScore(t *testing.T) {
	Convey("Seeders sub-score", t, func() {
		So(seedersScore(50, 50), ShouldEqual, 1.0)
		So(seedersScore(10, 50), ShouldEqual, 0.2)
		So(seedersScore(0, 50), ShouldEqual, 0.0)

		Convey("Empty or all-zero batches contribute nothing", func() {
			So(seedersScore(10, 0), ShouldEqual, 0.0)
		})

		Convey("Never exceeds 1", func() {
			So(seedersScore(100, 50), ShouldEqual, 1.0)
		})
	})
}

func TestSeasonEpisodeScore(t *testing.T) {
	Convey("Season/episode sub-score", t, func() {
		q := source.NewQuery("Dark", 2, 5)

		Convey("Exact S02E05 tag scores 1.0", func() {
			So(seasonEpisodeScore(q, "Dark.S02E05.1080p"), ShouldEqual, 1.0)
		})

		Convey("Season-only S02 tag scores 0.5", func() {
			So(seasonEpisodeScore(q, "Dark.S02.Complete.1080p"), ShouldEqual, 0.5)
		})

		Convey("No tag scores 0", func() {
			So(seasonEpisodeScore(q, "Dark.Complete.Series"), ShouldEqual, 0.0)
		})

		Convey("Unset targets always score 0", func() {
			bare := source.NewQuery("Dark", 0, 0)
			So(seasonEpisodeScore(bare, "Dark.S02E05"), ShouldEqual, 0.0)
		})

		Convey("Matching is case-insensitive", func() {
			So(seasonEpisodeScore(q, "dark.s02e05.720p"), ShouldEqual, 1.0)
		})
	})
}

func TestNameSimilarity(t *testing.T) {
	Convey("Name similarity", t, func() {
		Convey("Identical titles score 1", func() {
			So(nameSimilarity("The Matrix", "The Matrix"), ShouldEqual, 1.0)
		})

		Convey("Token order does not matter", func() {
			So(nameSimilarity("Matrix The 1999", "The.Matrix.1999"), ShouldEqual, 1.0)
		})

		Convey("Punctuation noise is ignored", func() {
			So(nameSimilarity("The Matrix", "The...Matrix!!!"), ShouldEqual, 1.0)
		})

		Convey("Partial overlap still scores well", func() {
			sim := nameSimilarity("Matrix", "The.Matrix.1999.1080p.BluRay")
			So(sim, ShouldBeGreaterThan, 0.1)
			So(sim, ShouldBeLessThan, 1.0)
		})

		Convey("Unrelated names score low", func() {
			So(nameSimilarity("The Matrix", "Finding Nemo"), ShouldBeLessThan, 0.4)
		})

		Convey("Empty inputs score 0", func() {
			So(nameSimilarity("", "The Matrix"), ShouldEqual, 0.0)
		})
	})
}

func TestScoreIdempotence(t *testing.T) {
	Convey("Scoring is pure", t, func() {
		engine := NewEngine(DefaultWeights)
		q := source.NewQuery("Dark", 1, 2)

		first := engine.Score(q, "Dark.S01E02.1080p", 42, 100)
		second := engine.Score(q, "Dark.S01E02.1080p", 42, 100)
		So(first, ShouldEqual, second)
	})
}

func TestRankMatrixScenario(t *testing.T) {
	Convey("Ranking the documented Matrix batch", t, func() {
		engine := NewEngine(DefaultWeights)
		q := source.NewQuery("Matrix", 0, 0)

		batch := []*source.Candidate{
			{Name: "Matrix.1999.1080p", Seeders: 50},
			{Name: "The.Matrix.2160p.REMUX", Seeders: 10},
		}

		engine.Rank(q, batch)

		// The 2160p entry wins on quality (1.0 vs 0.8) but loses on
		// seeders (0.2 vs 1.0); the order must come from the full
		// weighted sum, computed here factor by factor.
		expected := func(name string, seeders int) float64 {
			return DefaultWeights.NameSimilarity*nameSimilarity(q.String(), name) +
				DefaultWeights.Quality*qualityScore(name) +
				DefaultWeights.Seeders*seedersScore(seeders, 50) +
				DefaultWeights.SeasonEpisode*seasonEpisodeScore(q, name)
		}

		scoreA := expected("Matrix.1999.1080p", 50)
		scoreB := expected("The.Matrix.2160p.REMUX", 10)

		So(batch[0].Score, ShouldBeGreaterThanOrEqualTo, batch[1].Score)
		if scoreA >= scoreB {
			So(batch[0].Name, ShouldEqual, "Matrix.1999.1080p")
			So(batch[0].Score, ShouldEqual, scoreA)
		} else {
			So(batch[0].Name, ShouldEqual, "The.Matrix.2160p.REMUX")
			So(batch[0].Score, ShouldEqual, scoreB)
		}
	})
}

func TestRankStableTies(t *testing.T) {
	Convey("Equal scores keep first-seen order", t, func() {
		engine := NewEngine(DefaultWeights)
		q := source.NewQuery("Dark", 0, 0)

		batch := []*source.Candidate{
			{Name: "Dark.1080p", Seeders: 10, Provider: "first"},
			{Name: "Dark.1080p", Seeders: 10, Provider: "second"},
		}

		engine.Rank(q, batch)

		So(batch[0].Score, ShouldEqual, batch[1].Score)
		So(batch[0].Provider, ShouldEqual, "first")
	})
}
