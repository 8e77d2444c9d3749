// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/leaguecast-cli/leaguecast/color"
	"github.com/leaguecast-cli/leaguecast/constant"
	"github.com/leaguecast-cli/leaguecast/key"
	"github.com/leaguecast-cli/leaguecast/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Leaguecast + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case map[string]string:
		return "map[string]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.FeedVideoURL, "https://www.watchleague.tv/handlers/mediafeed.ashx",
		"Default video/schedule feed.\nAlso used as the fallback listing for unrecognized categories")
	register(key.FeedScoreURL, "https://www.watchleague.tv/handlers/scorefeed.ashx",
		"Score feed used for upcoming fixtures and score lookups")
	register(key.FeedHomeURL, "https://www.watchleague.tv/handlers/homefeed.ashx",
		"Home feed listing headline items, including box score references")
	register(key.FeedBoxURL, "https://www.watchleague.tv/handlers/boxscore.ashx?id=%s",
		"Per-box live feed, templated by box identifier")
	register(key.FeedTopicsURL, "https://www.watchleague.tv/handlers/mediafeed.ashx?topic=%s",
		"Category topic feed, templated by URL-encoded topic name")
	register(key.FeedCategoryTopics, map[string]string{
		"Match Highlights": "match-highlights",
		"Match Replays":    "match-replays",
	}, "Lookup table from menu category name to feed topic")

	register(key.StreamAPIURL, "https://api.watchleague.tv/streams/%s.json",
		"Direct stream API, templated by video identifier")
	register(key.StreamPlatformURL, "https://edge.api.brightcove.com/playback/v1/accounts/%s/videos/%s",
		"Third-party video platform playback API, templated by account and video identifiers")
	register(key.StreamSignURL, "https://api.watchleague.tv/sign?url=%s",
		"URL-signing endpoint, templated by URL-encoded target URL")
	register(key.StreamSecret, "",
		"Shared secret used to derive the time-bucketed stream authorization credential.\nMust be supplied via config file or environment")
	register(key.StreamUsername, "mobile-app-league",
		"Username paired with the derived password in the authorization credential")
	register(key.StreamPlatformCode, "league-vidset-ms",
		"Platform code substituted for the filter placeholder in direct-API stream URLs")

	register(key.MenuListLimit, 50, "Limit of listing entries to show in the interactive menu")
	register(key.MenuShowScores, true, "Attach live scores to listed matches when a match identifier is present")

	register(key.IconsVariant, "plain",
		"Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)")

	register(key.Player, "mpv", "Media player to use (e.g., mpv, iina, vlc)")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info",
		"Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
