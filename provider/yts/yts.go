// Package yts implements the movie-only fallback torrent index client.
package yts

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/streamsan-cli/streamsan/constant"
	"github.com/streamsan-cli/streamsan/network"
	"github.com/streamsan-cli/streamsan/source"
)

const defaultEndpoint = "https://yts.mx/api/v2"

// YTS queries the YTS movie index. It has no season/episode concept and is
// only consulted as a fallback when the primary index yields nothing for a movie.
type YTS struct {
	endpoint string
	client   *http.Client
}

// New returns a client against the public YTS endpoint.
func New() *YTS {
	return &YTS{
		endpoint: defaultEndpoint,
		client:   network.Client,
	}
}

// Name returns the unique identifier for the index.
func (y *YTS) Name() string {
	return "yts"
}

// MoviesOnly reports whether the index carries no season/episode concept.
func (y *YTS) MoviesOnly() bool {
	return true
}

type listResponse struct {
	Status string `json:"status"`
	Data   struct {
		MovieCount int `json:"movie_count"`
		Movies     []struct {
			Title    string `json:"title_long"`
			Year     int    `json:"year"`
			Torrents []struct {
				URL       string `json:"url"`
				Hash      string `json:"hash"`
				Quality   string `json:"quality"`
				Seeds     int    `json:"seeds"`
				SizeBytes int64  `json:"size_bytes"`
			} `json:"torrents"`
		} `json:"movies"`
	} `json:"data"`
}

// Search executes a query-term lookup. Only the bare title of the query is
// meaningful here; season/episode targets are ignored by construction since
// callers strip them before falling back. A zero movie count is an empty
// batch, not an error.
func (y *YTS) Search(query source.Query) ([]*source.Candidate, error) {
	u, err := url.Parse(y.endpoint + "/list_movies.json")
	if err != nil {
		return nil, fmt.Errorf("yts endpoint: %w", err)
	}

	q := u.Query()
	q.Set("query_term", query.Title)
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("yts request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yts search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yts search: status %d", resp.StatusCode)
	}

	var parsed listResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("yts decode: %w", err)
	}

	if parsed.Status != "ok" || parsed.Data.MovieCount == 0 {
		return nil, nil
	}

	var candidates []*source.Candidate
	for _, movie := range parsed.Data.Movies {
		for _, t := range movie.Torrents {
			if t.Hash == "" {
				continue
			}

			candidates = append(candidates, &source.Candidate{
				Name:     fmt.Sprintf("%s %s YTS", movie.Title, t.Quality),
				InfoHash: t.Hash,
				Seeders:  t.Seeds,
				Size:     t.SizeBytes,
			})
		}
	}

	return candidates, nil
}
