// Package source defines the domain models for media discovery and candidate selection.
package source

import (
	"fmt"
	"net/url"

	ptn "github.com/razsteinmetz/go-ptn"
)

// Candidate is a single torrent record returned by an index provider for a query.
// Candidates live only for the duration of one selection pass.
type Candidate struct {
	Name     string  `json:"name"`
	InfoHash string  `json:"info_hash"`
	Provider string  `json:"provider"`
	Seeders  int     `json:"seeders"`
	Size     int64   `json:"size"`
	Score    float64 `json:"score"`

	// Resolution and Rip are display metadata parsed from the release name.
	Resolution string `json:"resolution"`
	Rip        string `json:"rip"`
}

// Magnet renders the resolvable magnet identifier handed to the playback launcher.
func (c *Candidate) Magnet() string {
	return fmt.Sprintf("magnet:?xt=urn:btih:%s&dn=%s", c.InfoHash, url.QueryEscape(c.Name))
}

func (c *Candidate) String() string {
	return c.Name
}

// ParseReleaseMeta fills the display metadata fields from the release name.
func (c *Candidate) ParseReleaseMeta() {
	info, err := ptn.Parse(c.Name)
	if err != nil || info == nil {
		return
	}
	c.Resolution = info.Resolution
	c.Rip = info.Quality
}
