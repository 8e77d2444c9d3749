package menu

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/leaguecast-cli/leaguecast/color"
	"github.com/leaguecast-cli/leaguecast/icon"
	"github.com/leaguecast-cli/leaguecast/style"
	"github.com/leaguecast-cli/leaguecast/util"
)

const promptPageSize = 15

// titlePrompt clears the screen and renders a section banner.
func titlePrompt(text string) {
	util.ClearScreen()
	fmt.Println(style.Title(text))
}

// menuPrompt asks the user to pick one of the entries, narrowing them with a
// fuzzy filter while typing. It returns the index of the picked entry, so two
// entries that render identically remain distinct selections.
func menuPrompt(message string, entries []string) (int, error) {
	var picked int

	prompt := &survey.Select{
		Message:  message,
		Options:  entries,
		PageSize: promptPageSize,
		VimMode:  true,
		Filter: func(filter, value string, _ int) bool {
			return fuzzy.MatchNormalizedFold(filter, value)
		},
	}

	err := survey.AskOne(prompt, &picked)
	if err != nil {
		return 0, err
	}

	return picked, nil
}

// progress shows an erasable activity note and returns a function that removes it.
func progress(message string) func() {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(message)))
}

// fail reports a non-fatal problem without leaving the session.
func fail(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(message))
}
