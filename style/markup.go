package style

import (
	"regexp"

	"github.com/leaguecast-cli/leaguecast/color"
)

// markupPattern matches one feed color span of the form [COLOR name]text[/COLOR].
var markupPattern = regexp.MustCompile(`\[COLOR ([a-z]+)\](.*?)\[/COLOR\]`)

// RenderMarkup converts feed color markup into terminal-colored text.
// Text outside markup spans passes through untouched.
func RenderMarkup(s string) string {
	return markupPattern.ReplaceAllStringFunc(s, func(span string) string {
		groups := markupPattern.FindStringSubmatch(span)
		return Fg(color.ByName(groups[1]))(groups[2])
	})
}

// StripMarkup removes feed color markup, keeping only the plain text content.
func StripMarkup(s string) string {
	return markupPattern.ReplaceAllString(s, "$2")
}
