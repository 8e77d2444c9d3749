// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"os"
	"sort"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"

	"github.com/leaguecast-cli/leaguecast/style"
	"github.com/leaguecast-cli/leaguecast/video"
)

// sectionLoaders maps catalog section identifiers to their listing loaders.
var sectionLoaders = map[string]func(o *Options) ([]*video.Video, error){
	"live": func(o *Options) ([]*video.Video, error) {
		return o.Feeds.LiveMatches()
	},
	"latest": func(o *Options) ([]*video.Video, error) {
		return o.Feeds.Matches()
	},
	"upcoming": func(o *Options) ([]*video.Video, error) {
		return o.Feeds.Upcoming()
	},
	"replays": func(o *Options) ([]*video.Video, error) {
		return o.Feeds.Videos("Match Replays")
	},
	"highlights": func(o *Options) ([]*video.Video, error) {
		return o.Feeds.Videos("Match Highlights")
	},
	"all": func(o *Options) ([]*video.Video, error) {
		return o.Feeds.Videos("")
	},
}

// Sections returns the catalog section identifiers accepted by Run, sorted alphabetically.
func Sections() []string {
	sections := lo.Keys(sectionLoaders)
	sort.Strings(sections)
	return sections
}

func errUnknownSection(section string) error {
	closest := lo.MinBy(Sections(), func(a string, b string) bool {
		return levenshtein.Distance(section, a) < levenshtein.Distance(section, b)
	})

	return fmt.Errorf("unknown section %s, did you mean %s?", section, closest)
}

// Load fetches the listing of the configured catalog section.
func Load(options *Options) ([]*video.Video, error) {
	load, ok := sectionLoaders[options.Section]
	if !ok {
		return nil, errUnknownSection(options.Section)
	}

	return load(options)
}

// Run lists a catalog section and dispatches it to the configured output writer.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	videos, err := Load(options)
	if err != nil {
		return err
	}

	if options.Picker.IsPresent() {
		if choice := options.Picker.MustGet()(videos); choice != nil {
			videos = []*video.Video{choice}
		} else {
			videos = nil
		}
	}

	if options.Resolve {
		for _, v := range videos {
			url, err := options.Streams.Resolve(v, options.MediaToken)
			if err != nil {
				return err
			}

			fmt.Fprintln(options.Out, url)
		}

		return nil
	}

	if options.Encode {
		for _, v := range videos {
			fmt.Fprintln(options.Out, v.Encode())
		}

		return nil
	}

	if options.Json {
		return writeJson(options.Out, options.Section, videos)
	}

	for _, v := range videos {
		line := style.StripMarkup(v.String())

		if airtime := v.Time.OrElse(""); airtime != "" {
			line += "\t" + airtime
		}

		fmt.Fprintln(options.Out, line)
	}

	return nil
}
