// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Feed Endpoints - these keys locate the remote XML documents the listing operations consume.
const (
	FeedVideoURL       = "feed.video_url"
	FeedScoreURL       = "feed.score_url"
	FeedHomeURL        = "feed.home_url"
	FeedBoxURL         = "feed.box_url"
	FeedTopicsURL      = "feed.topics_url"
	FeedCategoryTopics = "feed.category_topics"
)

// Stream Resolution - these keys configure the direct-API and platform playback endpoints.
const (
	StreamAPIURL       = "stream.api_url"
	StreamPlatformURL  = "stream.platform_url"
	StreamSignURL      = "stream.sign_url"
	StreamSecret       = "stream.secret"
	StreamUsername     = "stream.username"
	StreamPlatformCode = "stream.platform_code"
)

// Menu Interaction - these keys define the UI/UX parameters of the interactive listing browser.
const (
	MenuListLimit  = "menu.list_limit"
	MenuShowScores = "menu.show_scores"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Media Playback - these keys configure the external video player.
const (
	Player = "player.default"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
