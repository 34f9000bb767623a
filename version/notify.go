// Package version provides application version tracking and update discovery.
package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/color"
	"github.com/streamsan-cli/streamsan/constant"
	"github.com/streamsan-cli/streamsan/icon"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/style"
	"github.com/streamsan-cli/streamsan/util"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/streamsan-cli/streamsan/releases/tag/v"+version),
	)
}
