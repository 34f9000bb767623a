// Package source defines the domain models for media discovery and candidate selection.
package source

import (
	"fmt"

	"github.com/samber/mo"
)

// Type discriminates between the two supported media kinds.
type Type string

const (
	Movie Type = "movie"
	Show  Type = "show"
)

// Media represents a catalog entity discovered through trending or search.
// It is immutable once fetched.
type Media struct {
	Type     Type   `json:"type"`
	Title    string `json:"title"`
	TraktID  int64  `json:"trakt_id"`
	Year     int    `json:"year"`
	Watchers int    `json:"watchers"`

	// TrendingSeason is the most recently aired season with episodes,
	// used as the default season suggestion for a show.
	TrendingSeason mo.Option[int] `json:"trending_season"`
}

func (m *Media) String() string {
	if m.Year > 0 {
		return fmt.Sprintf("%s (%d)", m.Title, m.Year)
	}
	return m.Title
}

// IsShow reports whether the media is episodic.
func (m *Media) IsShow() bool {
	return m.Type == Show
}
