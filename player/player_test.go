package player

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayerFlag(t *testing.T) {
	Convey("Configured players map to peerflix switches", t, func() {
		So(playerFlag("mpv"), ShouldEqual, "--mpv")
		So(playerFlag("vlc"), ShouldEqual, "--vlc")
		So(playerFlag("airplay"), ShouldEqual, "--airplay")
		So(playerFlag("mplayer"), ShouldEqual, "--mplayer")

		Convey("Unknown players fall back to mpv", func() {
			So(playerFlag("winamp"), ShouldEqual, "--mpv")
			So(playerFlag(""), ShouldEqual, "--mpv")
		})
	})
}

func TestLaunchTargetValidation(t *testing.T) {
	Convey("Launch rejects anything that is not a magnet link", t, func() {
		p := &Peerflix{player: "mpv"}

		err := p.Launch("--exec=rm -rf /", "evil")
		So(err, ShouldNotBeNil)
		So(IsMissingExecutable(err), ShouldBeFalse)
	})
}

func TestErrorClassification(t *testing.T) {
	Convey("Missing executable is recognized through wrapping", t, func() {
		err := fmt.Errorf("peerflix: %w", ErrMissingExecutable)
		So(IsMissingExecutable(err), ShouldBeTrue)
	})

	Convey("Ordinary playback failures are not session-fatal", t, func() {
		So(IsMissingExecutable(playbackError(errors.New("exit status 1"))), ShouldBeFalse)
		So(IsMissingExecutable(nil), ShouldBeFalse)
	})
}
