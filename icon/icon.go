// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, or plain ASCII depending on user preference.
package icon

import (
	"github.com/leaguecast-cli/leaguecast/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a single UI symbol in the global registry.
type Icon int

const (
	Live Icon = iota + 1
	Play
	Clock
	Score
	Fail
	Success
	Progress
)

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji string
	nerd  string
	plain string
}

// icons is the global registry of UI symbols.
var icons = map[Icon]iconDef{
	Live:     {emoji: "\U0001F534", nerd: "", plain: "[LIVE]"},
	Play:     {emoji: "▶️", nerd: "", plain: ">"},
	Clock:    {emoji: "\U0001F552", nerd: "", plain: "@"},
	Score:    {emoji: "\U0001F3C9", nerd: "", plain: "#"},
	Fail:     {emoji: "❌", nerd: "", plain: "x"},
	Success:  {emoji: "✅", nerd: "", plain: "+"},
	Progress: {emoji: "⏳", nerd: "", plain: ".."},
}

// Get retrieves the visual representation for the receiver iconDef based on the global icons variant configuration.
func (d iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
