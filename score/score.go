// Package score implements the multi-factor relevance ranking for torrent candidates.
//
// The total score is a weighted sum of four independently-bounded sub-scores.
// The weights are mixing coefficients and deliberately do not sum to 1;
// the formula itself is the compatibility contract.
package score

import (
	"sort"
	"strings"

	"github.com/streamsan-cli/streamsan/source"
)

// Weights maps each scoring factor to its mixing coefficient.
// They are applied consistently across a single ranking pass.
type Weights struct {
	NameSimilarity float64
	Quality        float64
	Seeders        float64
	SeasonEpisode  float64
}

// DefaultWeights are the canonical mixing coefficients.
var DefaultWeights = Weights{
	NameSimilarity: 0.5,
	Quality:        0.3,
	Seeders:        0.2,
	SeasonEpisode:  0.2,
}

// Engine computes candidate scores. It holds no mutable state;
// identical inputs always produce identical scores.
type Engine struct {
	weights Weights
}

// NewEngine returns an engine using the given weights.
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Score computes the relevance of a single candidate name against the query.
// maxSeeders is the maximum seeder count across the current batch; when it is
// zero the seeders sub-score contributes nothing.
func (e *Engine) Score(query source.Query, name string, seeders, maxSeeders int) float64 {
	return e.weights.NameSimilarity*nameSimilarity(query.String(), name) +
		e.weights.Quality*qualityScore(name) +
		e.weights.Seeders*seedersScore(seeders, maxSeeders) +
		e.weights.SeasonEpisode*seasonEpisodeScore(query, name)
}

// Rank scores every candidate against the batch's maximum seeder count and
// orders the slice by score descending. The sort is stable, so equal scores
// keep their first-seen order.
func (e *Engine) Rank(query source.Query, candidates []*source.Candidate) {
	var maxSeeders int
	for _, c := range candidates {
		if c.Seeders > maxSeeders {
			maxSeeders = c.Seeders
		}
	}

	for _, c := range candidates {
		c.Score = e.Score(query, c.Name, c.Seeders, maxSeeders)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

// qualityScore maps resolution/format tokens in the release name to a tier.
// Checked in descending priority; the first match wins.
func qualityScore(name string) float64 {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "4k") || strings.Contains(lower, "2160p"):
		return 1.0
	case strings.Contains(lower, "1080p"):
		return 0.8
	case strings.Contains(lower, "720p"):
		return 0.6
	default:
		return 0.3
	}
}

// seedersScore is the candidate's seeder count relative to the batch maximum.
func seedersScore(seeders, maxSeeders int) float64 {
	if maxSeeders <= 0 {
		return 0
	}

	ratio := float64(seeders) / float64(maxSeeders)
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

// seasonEpisodeScore rewards release names carrying the queried episode tag.
// Exact "S{ss}E{ee}" match scores 1.0, a season-only "S{ss}" match 0.5.
// Queries without both season and episode always score 0.
func seasonEpisodeScore(query source.Query, name string) float64 {
	if !query.HasEpisode() {
		return 0.0
	}

	lower := strings.ToLower(name)
	if strings.Contains(lower, strings.ToLower(query.EpisodePattern())) {
		return 1.0
	}
	if strings.Contains(lower, strings.ToLower(query.SeasonPattern())) {
		return 0.5
	}
	return 0.0
}
