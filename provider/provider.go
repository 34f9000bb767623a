// Package provider manages the registry of torrent index providers and candidate aggregation.
package provider

import (
	"github.com/streamsan-cli/streamsan/provider/piratebay"
	"github.com/streamsan-cli/streamsan/provider/yts"
	"github.com/streamsan-cli/streamsan/source"
)

// Index is the required capability set for a torrent index search engine.
type Index interface {
	// Name returns the unique identifier for the index.
	Name() string

	// MoviesOnly reports whether the index carries no season/episode concept.
	MoviesOnly() bool

	// Search executes a query against the index and returns raw candidates.
	Search(query source.Query) ([]*source.Candidate, error)
}

// Provider represents a registered torrent index.
type Provider struct {
	ID          string
	Name        string
	MoviesOnly  bool
	CreateIndex func() (Index, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the built-in index providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:         "piratebay",
			Name:       "piratebay",
			MoviesOnly: false,
			CreateIndex: func() (Index, error) {
				return piratebay.New(), nil
			},
		},
		{
			ID:         "yts",
			Name:       "yts",
			MoviesOnly: true,
			CreateIndex: func() (Index, error) {
				return yts.New(), nil
			},
		},
	}
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
