// Package cmd implements the command-line interface for streamsan.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/color"
	"github.com/streamsan-cli/streamsan/icon"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/player"
	"github.com/streamsan-cli/streamsan/style"
)

// CheckDependencies verifies the availability of the external binaries
// playback depends on: peerflix and the configured media player.
func CheckDependencies() {
	for _, dep := range []string{player.Executable, viper.GetString(key.Player)} {
		if _, err := exec.LookPath(dep); err != nil {
			printMissingDependencyError(dep)
			os.Exit(1)
		}
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	if dep == player.Executable {
		installCmd = "npm install -g peerflix"
	} else {
		switch runtime.GOOS {
		case "darwin":
			installCmd = "brew install " + dep
		case "linux":
			installCmd = "sudo apt install " + dep
		case "windows":
			installCmd = "scoop install " + dep
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.HiYellow).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
