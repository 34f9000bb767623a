// Package player launches magnet playback through peerflix, which streams the
// torrent and hands the video to a local media player.
package player

import (
	"errors"
	"fmt"
)

// Executable is the streaming engine this launcher shells out to.
const Executable = "peerflix"

// ErrMissingExecutable signals that the streaming engine is not installed.
// Unlike a failed playback, this ends the whole session.
var ErrMissingExecutable = errors.New("executable not found in PATH")

// IsMissingExecutable reports whether err is the session-fatal missing
// executable condition.
func IsMissingExecutable(err error) bool {
	return errors.Is(err, ErrMissingExecutable)
}

// playbackError wraps a non-fatal failure of one playback attempt.
func playbackError(err error) error {
	return fmt.Errorf("playback: %w", err)
}
