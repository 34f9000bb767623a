// Package sequencer drives episode-by-episode playback of a show as an
// explicit state machine. Interaction, catalog access, source selection and
// playback are all behind interfaces so the transition logic stays testable.
package sequencer

import "fmt"

// state enumerates the phases of one viewing session.
type state int

const (
	awaitingSeasonChoice state = iota + 1
	awaitingEpisodeChoice
	playingEpisode
	awaitingNextEpisodeDecision
	terminated
)

// Outcome records how the most recent playback attempt ended. It decides the
// default answer of the continue prompt.
type Outcome int

const (
	// OutcomePlayed means the episode launched successfully.
	OutcomePlayed Outcome = iota + 1

	// OutcomeNoCandidate means selection produced no viable source.
	OutcomeNoCandidate

	// OutcomeSkipped means the user declined every offered candidate.
	OutcomeSkipped
)

// ContinueByDefault reports the default answer of the "next episode?" prompt
// for this outcome. After a miss the user likely wants out, so only a
// successful or deliberately skipped playback defaults to continuing.
func (o Outcome) ContinueByDefault() bool {
	return o != OutcomeNoCandidate
}

// Playback is the cursor of the session: which episode the machine is on and
// how the last attempt went.
type Playback struct {
	Season      int
	Episode     int
	LastOutcome Outcome
}

// String renders the cursor in the conventional SxxExx form.
func (p Playback) String() string {
	return fmt.Sprintf("S%02dE%02d", p.Season, p.Episode)
}
