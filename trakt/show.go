package trakt

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Seasons fetches the season list of a show, specials excluded.
func Seasons(showID int64) ([]Season, error) {
	resp, err := apiRequest(fmt.Sprintf("/shows/%d/seasons", showID), url.Values{"extended": {"full"}})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var seasons []Season
	if err := json.NewDecoder(resp.Body).Decode(&seasons); err != nil {
		return nil, err
	}

	out := seasons[:0]
	for _, season := range seasons {
		if season.Number == 0 {
			continue
		}
		out = append(out, season)
	}

	return out, nil
}

// Episodes fetches the episode list of one season.
func Episodes(showID int64, season int) ([]Episode, error) {
	resp, err := apiRequest(fmt.Sprintf("/shows/%d/seasons/%d", showID, season), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var episodes []Episode
	if err := json.NewDecoder(resp.Body).Decode(&episodes); err != nil {
		return nil, err
	}

	return episodes, nil
}
