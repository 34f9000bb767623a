package mini

import "github.com/streamsan-cli/streamsan/trakt"

// traktCatalog adapts the trakt package to the sequencer's catalog interface.
type traktCatalog struct{}

func (traktCatalog) Seasons(showID int64) ([]trakt.Season, error) {
	return trakt.Seasons(showID)
}

func (traktCatalog) Episodes(showID int64, season int) ([]trakt.Episode, error) {
	return trakt.Episodes(showID, season)
}
