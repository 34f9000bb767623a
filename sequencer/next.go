package sequencer

import "github.com/streamsan-cli/streamsan/trakt"

// Next resolves the episode that follows the current cursor.
//
// Resolution is a two-step lookup: first the episode numbered one higher
// within the current season's episode list, then the first episode of the
// season numbered exactly one higher, provided that season has episodes.
// Gaps are not skipped over; a missing successor ends the sequence.
func Next(current Playback, episodes []trakt.Episode, seasons []trakt.Season) (Playback, bool) {
	for _, episode := range episodes {
		if episode.Season == current.Season && episode.Number == current.Episode+1 {
			return Playback{Season: current.Season, Episode: current.Episode + 1}, true
		}
	}

	for _, season := range seasons {
		if season.Number == current.Season+1 && season.EpisodeCount > 0 {
			return Playback{Season: season.Number, Episode: 1}, true
		}
	}

	return Playback{}, false
}
