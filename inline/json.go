// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/leaguecast-cli/leaguecast/style"
	"github.com/leaguecast-cli/leaguecast/video"
)

type Entry struct {
	VideoID string `json:"video_id,omitempty" jsonschema:"description=Platform identifier of the video asset."`
	MatchID string `json:"match_id,omitempty" jsonschema:"description=Identifier of the match the video belongs to."`
	Title   string `json:"title" jsonschema:"description=Display title with scoreboard markup removed."`
	Desc    string `json:"desc,omitempty" jsonschema:"description=Longer description of the video."`
	Time    string `json:"time,omitempty" jsonschema:"description=Localized air time of the video."`
	Thumb   string `json:"thumb,omitempty" jsonschema:"description=URL of the thumbnail image."`
	Live    bool   `json:"live" jsonschema:"description=Whether the video is a live broadcast."`
	Dummy   bool   `json:"dummy" jsonschema:"description=Whether the entry is an unplayable placeholder."`
	Encoded string `json:"encoded" jsonschema:"description=Transport form of the entry, accepted by the play command."`
}

type Output struct {
	Section string   `json:"section" jsonschema:"description=The catalog section that was listed."`
	Result  []*Entry `json:"result"`
}

func asJson(section string, videos []*video.Video) ([]byte, error) {
	var result = make([]*Entry, len(videos))
	for i, v := range videos {
		result[i] = &Entry{
			VideoID: v.VideoID.OrElse(""),
			MatchID: v.MatchID.OrElse(""),
			Title:   style.StripMarkup(v.String()),
			Desc:    v.Desc.OrElse(""),
			Time:    v.Time.OrElse(""),
			Thumb:   v.Thumb.OrElse(""),
			Live:    v.IsLive(),
			Dummy:   v.IsDummy(),
			Encoded: v.Encode(),
		}
	}

	return json.Marshal(&Output{
		Section: section,
		Result:  result,
	})
}

func writeJson(out io.Writer, section string, videos []*video.Video) error {
	data, err := asJson(section, videos)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
