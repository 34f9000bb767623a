// Package selection orchestrates provider aggregation and scoring into ranked candidate results.
//
// The controller is pure with respect to interaction: it returns the full
// ranked batch and leaves the final pick to the caller.
package selection

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/provider"
	"github.com/streamsan-cli/streamsan/score"
	"github.com/streamsan-cli/streamsan/source"
)

// Result carries the outcome of one selection pass.
type Result struct {
	// Query is the search term the candidates were ranked against.
	Query source.Query

	// Candidates is the surviving batch ordered by score descending.
	// Ties keep the aggregator's seeders-descending, first-seen order.
	Candidates []*source.Candidate
}

// Empty reports whether no viable source was found. This is an expected
// business outcome, not a fault.
func (r *Result) Empty() bool {
	return len(r.Candidates) == 0
}

// Best returns the top-ranked candidate, if any.
func (r *Result) Best() mo.Option[*source.Candidate] {
	if r.Empty() {
		return mo.None[*source.Candidate]()
	}
	return mo.Some(r.Candidates[0])
}

// Controller drives the query build, provider fallback and ranking for one title.
type Controller struct {
	primary    provider.Index
	secondary  provider.Index
	minSeeders int
	engine     *score.Engine
}

// New assembles a controller from explicit collaborators.
// secondary may be nil when no fallback index is configured.
func New(primary, secondary provider.Index, minSeeders int, engine *score.Engine) *Controller {
	return &Controller{
		primary:    primary,
		secondary:  secondary,
		minSeeders: minSeeders,
		engine:     engine,
	}
}

// NewFromConfig assembles a controller from the global configuration registry.
func NewFromConfig() (*Controller, error) {
	primaryProvider, ok := provider.Get(viper.GetString(key.ProvidersPrimary))
	if !ok {
		return nil, fmt.Errorf("unknown primary provider %q", viper.GetString(key.ProvidersPrimary))
	}

	primary, err := primaryProvider.CreateIndex()
	if err != nil {
		return nil, err
	}

	var secondary provider.Index
	if name := viper.GetString(key.ProvidersSecondary); name != "" {
		secondaryProvider, ok := provider.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown secondary provider %q", name)
		}

		if secondary, err = secondaryProvider.CreateIndex(); err != nil {
			return nil, err
		}
	}

	return New(primary, secondary, viper.GetInt(key.FilterMinSeeders), score.NewEngine(score.DefaultWeights)), nil
}

// Select resolves the ranked candidate batch for a title and optional
// season/episode target.
//
// The primary index is always consulted first. When it yields nothing for a
// movie, the movie-only secondary index is queried exactly once with the bare
// title; episodic content never falls back. The returned batch is ranked by
// the scoring engine against the original query.
func (c *Controller) Select(media *source.Media, season, episode int) *Result {
	query := source.NewQuery(media.Title, season, episode)

	candidates := provider.Fetch(c.primary, query, c.minSeeders)

	if len(candidates) == 0 && !media.IsShow() && c.secondary != nil {
		// The secondary index is movie-only and has no season/episode concept.
		candidates = provider.Fetch(c.secondary, source.NewQuery(media.Title, 0, 0), c.minSeeders)
	}

	c.engine.Rank(query, candidates)

	return &Result{Query: query, Candidates: candidates}
}
