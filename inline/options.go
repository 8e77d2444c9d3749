// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/mo"

	"github.com/leaguecast-cli/leaguecast/feed"
	"github.com/leaguecast-cli/leaguecast/stream"
	"github.com/leaguecast-cli/leaguecast/video"
)

// Picker narrows a listing down to a single entry.
type Picker func([]*video.Video) *video.Video

type Options struct {
	Out        io.Writer
	Feeds      *feed.Client
	Streams    *stream.Resolver
	MediaToken string

	// Section is the catalog section to list.
	Section string
	// Picker optionally selects a single entry from the listing.
	Picker mo.Option[Picker]

	// Json formats the output as a structured JSON document.
	Json bool
	// Encode prints each entry in its transport form instead of a readable line.
	Encode bool
	// Resolve exchanges each selected entry for its playable stream URL.
	Resolve bool
}

// ParsePicker translates a selector expression into a Picker.
func ParsePicker(expr string) (Picker, error) {
	switch expr {
	case "first":
		return func(videos []*video.Video) *video.Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[0]
		}, nil
	case "last":
		return func(videos []*video.Video) *video.Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[len(videos)-1]
		}, nil
	}

	index, err := strconv.ParseUint(expr, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid selector: %s", expr)
	}

	return func(videos []*video.Video) *video.Video {
		if int(index) >= len(videos) {
			return nil
		}
		return videos[index]
	}, nil
}
