// Package trakt provides a client for the Trakt metadata catalog REST API.
package trakt

// ids carries the identifier set Trakt attaches to every resource.
type ids struct {
	Trakt int64  `json:"trakt"`
	Slug  string `json:"slug"`
}

// resource is the common shape of a movie or show payload.
type resource struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   ids    `json:"ids"`
}

// trendingItem wraps a trending entry; exactly one of Movie or Show is set.
type trendingItem struct {
	Watchers int       `json:"watchers"`
	Movie    *resource `json:"movie"`
	Show     *resource `json:"show"`
}

// searchItem wraps a text-search hit; Type discriminates the payload.
type searchItem struct {
	Type  string    `json:"type"`
	Movie *resource `json:"movie"`
	Show  *resource `json:"show"`
}

// Season describes one season of a show.
type Season struct {
	Number       int    `json:"number"`
	EpisodeCount int    `json:"episode_count"`
	FirstAired   string `json:"first_aired"`
}

// Episode describes one episode within a season.
type Episode struct {
	Season int    `json:"season"`
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// Details carries the extended metadata shown before playback.
type Details struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Overview string   `json:"overview"`
	Genres   []string `json:"genres"`
	Rating   float64  `json:"rating"`
	Runtime  int      `json:"runtime"`
}
