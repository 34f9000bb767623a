package trakt

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/source"
	"github.com/streamsan-cli/streamsan/util"
)

const trendingCacheLifetime = time.Minute * 15

// Trending fetches the catalog's currently trending titles of one kind,
// ordered by watcher count descending.
func Trending(kind source.Type, limit int) ([]*source.Media, error) {
	path := "/movies/trending"
	if kind == source.Show {
		path = "/shows/trending"
	}

	resp, err := apiRequest(path, url.Values{"limit": {strconv.Itoa(limit)}})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var items []trendingItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}

	media := make([]*source.Media, 0, len(items))
	for _, item := range items {
		res := item.Movie
		if kind == source.Show {
			res = item.Show
		}
		if res == nil {
			continue
		}

		media = append(media, &source.Media{
			Type:     kind,
			Title:    res.Title,
			TraktID:  res.IDs.Trakt,
			Year:     res.Year,
			Watchers: item.Watchers,
		})
	}

	return media, nil
}

// CombinedTrending interleaves the trending movies and shows into a single
// list ordered by watcher count. Results are cached briefly to keep the
// main menu snappy.
func CombinedTrending() ([]*source.Media, error) {
	limit := viper.GetInt(key.TrendingLimit)

	if cached, expired, err := trendingCacher.Get(); err == nil && !expired && cached != nil {
		return cached, nil
	}

	movies, err := Trending(source.Movie, limit)
	if err != nil {
		return nil, err
	}

	shows, err := Trending(source.Show, limit)
	if err != nil {
		return nil, err
	}

	combined := append(movies, shows...)
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Watchers > combined[j].Watchers
	})

	util.Ignore(func() error { return trendingCacher.Set(combined) })
	return combined, nil
}

// LatestAiredSeason returns the number of the most recently aired season
// that has at least one episode. Specials (season 0) are ignored.
func LatestAiredSeason(seasons []Season) mo.Option[int] {
	latest := mo.None[int]()
	for _, season := range seasons {
		if season.Number == 0 || season.EpisodeCount == 0 || season.FirstAired == "" {
			continue
		}

		aired, err := time.Parse(time.RFC3339, season.FirstAired)
		if err != nil || aired.After(time.Now()) {
			continue
		}

		latest = mo.Some(season.Number)
	}

	return latest
}
