package sequencer

import (
	"fmt"

	"github.com/streamsan-cli/streamsan/log"
	"github.com/streamsan-cli/streamsan/player"
	"github.com/streamsan-cli/streamsan/selection"
	"github.com/streamsan-cli/streamsan/source"
	"github.com/streamsan-cli/streamsan/trakt"
)

// Catalog supplies the season and episode structure of a show.
type Catalog interface {
	Seasons(showID int64) ([]trakt.Season, error)
	Episodes(showID int64, season int) ([]trakt.Episode, error)
}

// Selector resolves a ranked candidate batch for an episode target.
type Selector interface {
	Select(media *source.Media, season, episode int) *selection.Result
}

// Launcher hands a chosen source over to the streaming player.
type Launcher interface {
	Launch(magnet, title string) error
}

// Interactor covers every decision the session asks of the user. Each choice
// method's second return value is false when the user backs out.
type Interactor interface {
	ChooseSeason(seasons []trakt.Season, preferred int) (int, bool)
	ChooseEpisode(season int, episodes []trakt.Episode) (int, bool)
	PickCandidate(result *selection.Result) (*source.Candidate, bool)
	ContinueNext(next Playback, outcome Outcome) bool
	Notify(format string, args ...any)
}

// Sequencer walks a show episode by episode until the user stops or the
// structure runs out.
type Sequencer struct {
	media      *source.Media
	catalog    Catalog
	selector   Selector
	launcher   Launcher
	interactor Interactor

	state    state
	playback Playback

	seasons  []trakt.Season
	episodes map[int][]trakt.Episode
}

// New assembles a sequencer session for one show.
func New(media *source.Media, catalog Catalog, selector Selector, launcher Launcher, interactor Interactor) *Sequencer {
	return &Sequencer{
		media:      media,
		catalog:    catalog,
		selector:   selector,
		launcher:   launcher,
		interactor: interactor,
		episodes:   make(map[int][]trakt.Episode),
	}
}

// Run drives the session until termination. The only error it returns is a
// missing player executable, which ends the whole session; everything else is
// absorbed into the machine's transitions.
func (s *Sequencer) Run() error {
	s.state = awaitingSeasonChoice

	for s.state != terminated {
		if err := s.step(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sequencer) step() error {
	switch s.state {
	case awaitingSeasonChoice:
		s.chooseSeason()
	case awaitingEpisodeChoice:
		s.chooseEpisode()
	case playingEpisode:
		return s.play()
	case awaitingNextEpisodeDecision:
		s.decideNext()
	}

	return nil
}

func (s *Sequencer) chooseSeason() {
	seasons := s.loadSeasons()
	if len(seasons) == 0 {
		s.interactor.Notify("%s has no playable seasons", s.media.Title)
		s.state = terminated
		return
	}

	preferred, ok := s.media.TrendingSeason.Get()
	if !ok {
		preferred = trakt.LatestAiredSeason(seasons).OrElse(seasons[0].Number)
	}

	season, ok := s.interactor.ChooseSeason(seasons, preferred)
	if !ok {
		s.state = terminated
		return
	}

	s.playback.Season = season
	s.state = awaitingEpisodeChoice
}

func (s *Sequencer) chooseEpisode() {
	episodes := s.episodesOf(s.playback.Season)
	if len(episodes) == 0 {
		s.interactor.Notify("season %d of %s has no episodes listed", s.playback.Season, s.media.Title)
		s.state = awaitingSeasonChoice
		return
	}

	episode, ok := s.interactor.ChooseEpisode(s.playback.Season, episodes)
	if !ok {
		s.state = awaitingSeasonChoice
		return
	}

	s.playback.Episode = episode
	s.state = playingEpisode
}

func (s *Sequencer) play() error {
	result := s.selector.Select(s.media, s.playback.Season, s.playback.Episode)

	if result.Empty() {
		s.interactor.Notify("no viable source found for %s", result.Query)
		s.playback.LastOutcome = OutcomeNoCandidate
		s.state = awaitingNextEpisodeDecision
		return nil
	}

	candidate, ok := s.interactor.PickCandidate(result)
	if !ok {
		s.playback.LastOutcome = OutcomeSkipped
		s.state = awaitingNextEpisodeDecision
		return nil
	}

	title := fmt.Sprintf("%s %s", s.media.Title, s.playback)
	if err := s.launcher.Launch(candidate.Magnet(), title); err != nil {
		if player.IsMissingExecutable(err) {
			return err
		}

		s.interactor.Notify("playback failed: %s", err)
		s.playback.LastOutcome = OutcomeNoCandidate
		s.state = awaitingNextEpisodeDecision
		return nil
	}

	s.playback.LastOutcome = OutcomePlayed
	s.state = awaitingNextEpisodeDecision
	return nil
}

func (s *Sequencer) decideNext() {
	next, ok := Next(s.playback, s.episodesOf(s.playback.Season), s.loadSeasons())
	if !ok {
		s.interactor.Notify("reached the end of %s", s.media.Title)
		s.state = terminated
		return
	}

	if !s.interactor.ContinueNext(next, s.playback.LastOutcome) {
		s.state = terminated
		return
	}

	s.playback.Season = next.Season
	s.playback.Episode = next.Episode
	s.state = playingEpisode
}

// loadSeasons fetches and caches the show's seasons. Catalog failures degrade
// to an empty list.
func (s *Sequencer) loadSeasons() []trakt.Season {
	if s.seasons != nil {
		return s.seasons
	}

	seasons, err := s.catalog.Seasons(s.media.TraktID)
	if err != nil {
		log.Warnf("fetching seasons of %s: %s", s.media.Title, err)
		seasons = []trakt.Season{}
	}

	playable := make([]trakt.Season, 0, len(seasons))
	for _, season := range seasons {
		if season.EpisodeCount > 0 {
			playable = append(playable, season)
		}
	}

	s.seasons = playable
	return s.seasons
}

// episodesOf fetches and caches one season's episode list. Catalog failures
// degrade to an empty list.
func (s *Sequencer) episodesOf(season int) []trakt.Episode {
	if episodes, ok := s.episodes[season]; ok {
		return episodes
	}

	episodes, err := s.catalog.Episodes(s.media.TraktID, season)
	if err != nil {
		log.Warnf("fetching episodes of %s season %d: %s", s.media.Title, season, err)
		episodes = []trakt.Episode{}
	}

	s.episodes[season] = episodes
	return episodes
}
