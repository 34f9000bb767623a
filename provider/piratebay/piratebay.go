// Package piratebay implements the primary, general-purpose torrent index client.
package piratebay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/streamsan-cli/streamsan/constant"
	"github.com/streamsan-cli/streamsan/network"
	"github.com/streamsan-cli/streamsan/source"
)

const defaultEndpoint = "https://apibay.org"

// PirateBay queries the apibay search API. It is the only index that goes
// through the retrying HTTP client; transient 429/5xx responses are retried
// with backoff before the failure is absorbed upstream.
type PirateBay struct {
	endpoint string
	client   *http.Client
}

// New returns a client against the public apibay endpoint.
func New() *PirateBay {
	return &PirateBay{
		endpoint: defaultEndpoint,
		client:   network.RetryingClient,
	}
}

// Name returns the unique identifier for the index.
func (p *PirateBay) Name() string {
	return "piratebay"
}

// MoviesOnly reports whether the index carries no season/episode concept.
func (p *PirateBay) MoviesOnly() bool {
	return false
}

// record is a single raw apibay search result. Numeric fields arrive as strings.
type record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	InfoHash string `json:"info_hash"`
	Seeders  string `json:"seeders"`
	Size     string `json:"size"`
}

// Search executes a free-text query and returns raw candidates.
// The API signals "no results" with a single sentinel record of id "0";
// that is an empty batch, not an error.
func (p *PirateBay) Search(query source.Query) ([]*source.Candidate, error) {
	u, err := url.Parse(p.endpoint + "/q.php")
	if err != nil {
		return nil, fmt.Errorf("piratebay endpoint: %w", err)
	}

	q := u.Query()
	q.Set("q", query.String())
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("piratebay request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("piratebay search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("piratebay search: status %d", resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("piratebay decode: %w", err)
	}

	if len(records) == 0 || records[0].ID == "0" {
		return nil, nil
	}

	candidates := make([]*source.Candidate, 0, len(records))
	for _, r := range records {
		if r.Name == "" || r.InfoHash == "" {
			continue
		}

		// Malformed counters degrade to zero rather than dropping the record.
		seeders, _ := strconv.Atoi(r.Seeders)
		size, _ := strconv.ParseInt(r.Size, 10, 64)

		candidates = append(candidates, &source.Candidate{
			Name:     r.Name,
			InfoHash: r.InfoHash,
			Seeders:  seeders,
			Size:     size,
		})
	}

	return candidates, nil
}
