package mini

import (
	"fmt"
	"strings"

	"github.com/streamsan-cli/streamsan/log"
	"github.com/streamsan-cli/streamsan/player"
	"github.com/streamsan-cli/streamsan/query"
	"github.com/streamsan-cli/streamsan/sequencer"
	"github.com/streamsan-cli/streamsan/style"
	"github.com/streamsan-cli/streamsan/trakt"
	"github.com/streamsan-cli/streamsan/util"
)

type state int

const (
	mainMenuState state = iota + 1
	trendingSelectState
	searchState
	mediaSelectState
	playMovieState
	sequenceShowState
	quitState
)

const (
	optionTrending = "Trending now"
	optionSearch   = "Search"
	optionQuit     = "Quit"
)

func (m *mini) handleMainMenuState() error {
	util.ClearScreen()
	title("streamsan")
	fmt.Println(style.Faint("Streams content from public torrent indexes. Mind your local laws."))

	choice, err := selectString("What do you want to watch?", []string{
		optionTrending,
		optionSearch,
		optionQuit,
	}, optionTrending)
	if err != nil {
		return err
	}

	switch choice {
	case optionTrending:
		m.newState(trendingSelectState)
	case optionSearch:
		m.newState(searchState)
	case optionQuit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleTrendingSelectState() error {
	erase := progress("Fetching trending titles..")
	media, err := trakt.CombinedTrending()
	erase()

	if err != nil {
		log.Warnf("fetching trending: %s", err)
		fail("Could not reach the catalog")
		m.previousState()
		return nil
	}

	if len(media) == 0 {
		fail("Nothing is trending right now")
		m.previousState()
		return nil
	}

	renderMediaTable(media)

	selected, ok, err := m.chooseMedia(media)
	if err != nil {
		return err
	}
	if !ok {
		m.previousState()
		return nil
	}

	m.selectedMedia = selected
	m.routeSelected()
	return nil
}

func (m *mini) handleSearchState() error {
	title("Search")

	q, err := input("Search movies and shows", m.query, query.SuggestMany)
	if err != nil {
		return err
	}

	if q == "" {
		m.previousState()
		return nil
	}

	erase := progress("Searching..")
	results, err := trakt.Search(q)
	erase()

	if err != nil {
		log.Warnf("searching %q: %s", q, err)
		fail("Could not reach the catalog")
		return nil
	}

	util.Ignore(func() error { return query.Remember(q, 1) })

	if len(results) == 0 {
		fail(fmt.Sprintf("No results for %q", q))
		return nil
	}

	m.query = q
	m.cachedSearch[q] = results
	m.newState(mediaSelectState)
	return nil
}

func (m *mini) handleMediaSelectState() error {
	results := m.cachedSearch[m.query]
	renderMediaTable(results)

	selected, ok, err := m.chooseMedia(results)
	if err != nil {
		return err
	}
	if !ok {
		m.previousState()
		return nil
	}

	m.selectedMedia = selected
	m.routeSelected()
	return nil
}

// routeSelected dispatches a chosen title by its kind: movies play directly,
// shows enter the episode sequencer.
func (m *mini) routeSelected() {
	m.showDetails()

	if m.selectedMedia.IsShow() {
		m.newState(sequenceShowState)
		return
	}

	m.newState(playMovieState)
}

// showDetails prints the catalog's extended metadata for the chosen title.
// Failures only cost the panel, never the flow.
func (m *mini) showDetails() {
	erase := progress("Fetching details..")
	details, err := trakt.MediaDetails(m.selectedMedia)
	erase()

	if err != nil {
		log.Warnf("fetching details of %s: %s", m.selectedMedia, err)
		return
	}

	title(m.selectedMedia.String())
	if details.Overview != "" {
		fmt.Println(style.Faint(details.Overview))
	}
	if len(details.Genres) > 0 {
		fmt.Printf("%s %s\n", style.Bold("Genres"), strings.Join(details.Genres, ", "))
	}
	if details.Rating > 0 {
		fmt.Printf("%s %.1f/10\n", style.Bold("Rating"), details.Rating)
	}
	if details.Runtime > 0 {
		fmt.Printf("%s %s\n", style.Bold("Runtime"), util.Quantify(details.Runtime, "minute", "minutes"))
	}
}

func (m *mini) handlePlayMovieState() error {
	erase := progress("Selecting sources..")
	result := m.controller.Select(m.selectedMedia, 0, 0)
	erase()

	if result.Empty() {
		fail(fmt.Sprintf("No viable source found for %s", result.Query))
		m.previousState()
		return nil
	}

	candidate, ok := m.PickCandidate(result)
	if !ok {
		m.previousState()
		return nil
	}

	if err := m.launcher.Launch(candidate.Magnet(), m.selectedMedia.String()); err != nil {
		if player.IsMissingExecutable(err) {
			return err
		}

		log.Warnf("playing %s: %s", m.selectedMedia, err)
		fail(fmt.Sprintf("Playback failed: %s", err))
	}

	m.previousState()
	return nil
}

func (m *mini) handleSequenceShowState() error {
	seq := sequencer.New(m.selectedMedia, traktCatalog{}, m.controller, m.launcher, m)
	if err := seq.Run(); err != nil {
		return err
	}

	m.previousState()
	return nil
}
