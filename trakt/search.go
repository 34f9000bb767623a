package trakt

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/source"
)

// Search performs a text lookup across movies and shows.
func Search(query string) ([]*source.Media, error) {
	params := url.Values{
		"query": {query},
		"limit": {strconv.Itoa(viper.GetInt(key.SearchLimit))},
	}

	resp, err := apiRequest("/search/movie,show", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var items []searchItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}

	media := make([]*source.Media, 0, len(items))
	for _, item := range items {
		var (
			kind source.Type
			res  *resource
		)

		switch item.Type {
		case "movie":
			kind, res = source.Movie, item.Movie
		case "show":
			kind, res = source.Show, item.Show
		default:
			continue
		}

		if res == nil {
			continue
		}

		media = append(media, &source.Media{
			Type:    kind,
			Title:   res.Title,
			TraktID: res.IDs.Trakt,
			Year:    res.Year,
		})
	}

	return media, nil
}
