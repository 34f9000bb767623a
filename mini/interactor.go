package mini

import (
	"fmt"

	"github.com/streamsan-cli/streamsan/selection"
	"github.com/streamsan-cli/streamsan/sequencer"
	"github.com/streamsan-cli/streamsan/source"
	"github.com/streamsan-cli/streamsan/trakt"
)

// The mini interface itself answers the sequencer's questions.
var _ sequencer.Interactor = (*mini)(nil)

func (m *mini) ChooseSeason(seasons []trakt.Season, preferred int) (int, bool) {
	options := make([]string, len(seasons))
	def := ""
	for i, season := range seasons {
		options[i] = fmt.Sprintf("Season %d (%d episodes)", season.Number, season.EpisodeCount)
		if season.Number == preferred {
			def = options[i]
		}
	}
	options = append(options, backOption)

	choice, err := selectString("Pick a season", options, def)
	if err != nil || choice == backOption {
		return 0, false
	}

	var number int
	fmt.Sscanf(choice, "Season %d", &number)
	return number, number > 0
}

func (m *mini) ChooseEpisode(season int, episodes []trakt.Episode) (int, bool) {
	labels := make([]string, len(episodes))
	for i, episode := range episodes {
		labels[i] = fmt.Sprintf("E%02d %s", episode.Number, episode.Title)
	}

	index, ok, err := selectIndex(fmt.Sprintf("Pick an episode of season %d", season), labels)
	if err != nil || !ok {
		return 0, false
	}

	return episodes[index].Number, true
}

func (m *mini) PickCandidate(result *selection.Result) (*source.Candidate, bool) {
	renderCandidateTable(result)

	labels := make([]string, len(result.Candidates))
	for i, candidate := range result.Candidates {
		labels[i] = truncate(candidate.Name, truncateAt-20)
	}

	index, ok, err := selectIndex("Pick a source", labels)
	if err != nil || !ok {
		return nil, false
	}

	return result.Candidates[index], true
}

func (m *mini) ContinueNext(next sequencer.Playback, outcome sequencer.Outcome) bool {
	return confirm(fmt.Sprintf("Continue with %s?", next), outcome.ContinueByDefault())
}

func (m *mini) Notify(format string, args ...any) {
	fail(fmt.Sprintf(format, args...))
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}

	return s[:max-1] + "…"
}
