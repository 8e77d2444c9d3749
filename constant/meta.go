// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Leaguecast is the canonical application identifier used for filesystem paths and CLI branding.
	Leaguecast = "leaguecast"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for network requests to the video service.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden at link time by the release pipeline.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is the application's ASCII art banner shown on the root help screen.
const AsciiArtLogo = `
  _                                      _
 | | ___  __ _  __ _ _   _  ___ ___  ___| |_
 | |/ _ \/ _` + "`" + ` |/ _` + "`" + ` | | | |/ __/ _` + "`" + `/ __| __|
 | |  __/ (_| | (_| | |_| | (_| (_| \__ \ |_
 |_|\___|\__,_|\__, |\__,_|\___\__,_|___/\__|
               |___/
`
