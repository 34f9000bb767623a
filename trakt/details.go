package trakt

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/streamsan-cli/streamsan/source"
)

// MediaDetails fetches the extended metadata of a movie or show.
func MediaDetails(media *source.Media) (*Details, error) {
	path := fmt.Sprintf("/movies/%d", media.TraktID)
	if media.IsShow() {
		path = fmt.Sprintf("/shows/%d", media.TraktID)
	}

	resp, err := apiRequest(path, url.Values{"extended": {"full"}})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var details Details
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, err
	}

	return &details, nil
}
