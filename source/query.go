// Package source defines the domain models for media discovery and candidate selection.
package source

import "fmt"

// Query is the deterministic search term sent to torrent indexes.
// Season and Episode are optional; zero means unset.
type Query struct {
	Title   string
	Season  int
	Episode int
}

// NewQuery builds a query for the given title and optional season/episode target.
func NewQuery(title string, season, episode int) Query {
	return Query{Title: title, Season: season, Episode: episode}
}

// HasSeason reports whether a season target is set.
func (q Query) HasSeason() bool {
	return q.Season > 0
}

// HasEpisode reports whether both a season and an episode target are set.
func (q Query) HasEpisode() bool {
	return q.Season > 0 && q.Episode > 0
}

// String renders the canonical search term.
// Both targets set: "{title} S{ss}E{ee}"; season only: "{title} S{ss}"; otherwise the bare title.
// Season and episode numbers are always zero-padded to two digits.
func (q Query) String() string {
	switch {
	case q.HasEpisode():
		return fmt.Sprintf("%s S%02dE%02d", q.Title, q.Season, q.Episode)
	case q.HasSeason():
		return fmt.Sprintf("%s S%02d", q.Title, q.Season)
	default:
		return q.Title
	}
}

// EpisodePattern renders the "S{ss}E{ee}" tag for the query target, or an empty string when unset.
func (q Query) EpisodePattern() string {
	if !q.HasEpisode() {
		return ""
	}
	return fmt.Sprintf("S%02dE%02d", q.Season, q.Episode)
}

// SeasonPattern renders the "S{ss}" tag for the query target, or an empty string when unset.
func (q Query) SeasonPattern() string {
	if !q.HasSeason() {
		return ""
	}
	return fmt.Sprintf("S%02d", q.Season)
}
