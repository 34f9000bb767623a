package player

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/log"
)

// Peerflix runs the peerflix binary in the foreground and returns when the
// user closes the player.
type Peerflix struct {
	player string
}

// NewPeerflix builds a launcher for the configured media player.
func NewPeerflix() *Peerflix {
	return &Peerflix{player: viper.GetString(key.Player)}
}

// playerFlag maps a configured player name to the peerflix switch that opens
// it. Unknown players fall back to mpv.
func playerFlag(player string) string {
	switch player {
	case "vlc":
		return "--vlc"
	case "airplay":
		return "--airplay"
	case "mplayer":
		return "--mplayer"
	default:
		return "--mpv"
	}
}

// Launch streams the magnet and blocks until playback ends.
func (p *Peerflix) Launch(magnet, title string) error {
	// The target is passed as a positional argument; anything that is not a
	// magnet link must not reach the subprocess.
	if !strings.HasPrefix(magnet, "magnet:") {
		return playbackError(fmt.Errorf("refusing non-magnet target %q", magnet))
	}

	path, err := exec.LookPath(Executable)
	if err != nil {
		return fmt.Errorf("%s: %w", Executable, ErrMissingExecutable)
	}

	log.Infof("launching %s for %s", Executable, title)

	cmd := exec.Command(path, magnet, playerFlag(p.player))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return playbackError(err)
	}

	return nil
}
