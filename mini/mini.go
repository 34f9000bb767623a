// Package mini implements the interactive terminal interface for discovering
// and streaming titles.
package mini

import (
	"os"

	"github.com/streamsan-cli/streamsan/player"
	"github.com/streamsan-cli/streamsan/selection"
	"github.com/streamsan-cli/streamsan/source"
	"github.com/streamsan-cli/streamsan/util"
)

var truncateAt = 100

type Options struct {
	// Query skips the main menu and starts with this search.
	Query string
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	controller *selection.Controller
	launcher   sequencerLauncher

	cachedSearch map[string][]*source.Media

	query         string
	selectedMedia *source.Media
}

type sequencerLauncher interface {
	Launch(magnet, title string) error
}

func newMini(controller *selection.Controller) *mini {
	return &mini{
		controller:   controller,
		launcher:     player.NewPeerflix(),
		cachedSearch: make(map[string][]*source.Media),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

func Run(options *Options) error {
	controller, err := selection.NewFromConfig()
	if err != nil {
		return err
	}

	m := newMini(controller)
	m.state = mainMenuState
	if options.Query != "" {
		m.query = options.Query
		m.state = searchState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case mainMenuState:
		return m.handleMainMenuState()
	case trendingSelectState:
		return m.handleTrendingSelectState()
	case searchState:
		return m.handleSearchState()
	case mediaSelectState:
		return m.handleMediaSelectState()
	case playMovieState:
		return m.handlePlayMovieState()
	case sequenceShowState:
		return m.handleSequenceShowState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
