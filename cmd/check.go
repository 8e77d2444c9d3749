// Package cmd implements the command-line interface for leaguecast.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/leaguecast-cli/leaguecast/color"
	"github.com/leaguecast-cli/leaguecast/icon"
	"github.com/leaguecast-cli/leaguecast/key"
	"github.com/leaguecast-cli/leaguecast/style"
)

// CheckDependencies verifies that the configured media player is present in the system PATH.
func CheckDependencies() {
	player := viper.GetString(key.Player)

	_, err := exec.LookPath(player)
	if err != nil {
		printMissingDependencyError(player)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + dep
	case "linux":
		installCmd = "sudo apt install " + dep
	case "windows":
		installCmd = "scoop install " + dep
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
