package menu

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/leaguecast-cli/leaguecast/icon"
	"github.com/leaguecast-cli/leaguecast/key"
	"github.com/leaguecast-cli/leaguecast/log"
	"github.com/leaguecast-cli/leaguecast/open"
	"github.com/leaguecast-cli/leaguecast/style"
	"github.com/leaguecast-cli/leaguecast/video"
)

type state int

const (
	sectionSelectState state = iota + 1
	listingSelectState
	playState
	quitState
)

const (
	quitEntry = "Quit"
	backEntry = "Back"
)

// section is a browsable listing of the catalog.
type section struct {
	name string
	load func(m *menu) ([]*video.Video, error)
}

var sections = []*section{
	{
		name: "Live Matches",
		load: func(m *menu) ([]*video.Video, error) {
			videos, err := m.deps.Feeds.LiveMatches()
			if err != nil {
				return nil, err
			}

			if viper.GetBool(key.MenuShowScores) {
				m.backfillScores(videos)
			}

			return videos, nil
		},
	},
	{
		name: "Latest Matches",
		load: func(m *menu) ([]*video.Video, error) {
			return m.deps.Feeds.Matches()
		},
	},
	{
		name: "Upcoming Matches",
		load: func(m *menu) ([]*video.Video, error) {
			return m.deps.Feeds.Upcoming()
		},
	},
	{
		name: "Match Replays",
		load: func(m *menu) ([]*video.Video, error) {
			return m.deps.Feeds.Videos("Match Replays")
		},
	},
	{
		name: "Match Highlights",
		load: func(m *menu) ([]*video.Video, error) {
			return m.deps.Feeds.Videos("Match Highlights")
		},
	},
	{
		name: "All Videos",
		load: func(m *menu) ([]*video.Video, error) {
			return m.deps.Feeds.Videos("")
		},
	},
}

func (m *menu) backfillScores(videos []*video.Video) {
	for _, v := range videos {
		matchID, ok := v.MatchID.Get()
		if !ok {
			continue
		}

		score, err := m.deps.Feeds.Score(matchID)
		if err != nil {
			log.Warnf("score lookup for match %s: %v", matchID, err)
			continue
		}

		if score.IsPresent() {
			v.Score = score
		}
	}
}

func (m *menu) handleSectionSelectState() error {
	titlePrompt("Leaguecast")

	names := lo.Map(sections, func(s *section, _ int) string {
		return s.name
	})
	names = append(names, quitEntry)

	picked, err := menuPrompt("Select a section", names)
	if err != nil {
		return err
	}

	if picked == len(sections) {
		m.newState(quitState)
		return nil
	}

	m.section = sections[picked]
	m.newState(listingSelectState)

	return nil
}

func (m *menu) handleListingSelectState() error {
	videos, cached := m.cachedListings[m.section.name]
	if !cached {
		stopProgress := progress(fmt.Sprintf("Loading %s..", m.section.name))

		loaded, err := m.section.load(m)
		stopProgress()
		if err != nil {
			fail(err.Error())
			m.previousState()
			return nil
		}

		videos = loaded
		m.cachedListings[m.section.name] = videos
	}

	if len(videos) == 0 {
		fail("Nothing to show here yet")
		m.previousState()
		return nil
	}

	if limit := viper.GetInt(key.MenuListLimit); limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}

	entries := append(listingEntries(videos), backEntry)

	picked, err := menuPrompt(m.section.name, entries)
	if err != nil {
		return err
	}

	if picked == len(videos) {
		m.previousState()
		return nil
	}

	selected := videos[picked]

	if selected.IsDummy() {
		fail("This match has not started yet")
		return nil
	}

	m.selected = selected
	m.newState(playState)

	return nil
}

// listingEntries renders one prompt entry per video, preserving positional
// correspondence with the listing so selection is by index.
func listingEntries(videos []*video.Video) []string {
	return lo.Map(videos, func(v *video.Video, _ int) string {
		return style.Truncate(truncateAt)(listingEntry(v))
	})
}

func listingEntry(v *video.Video) string {
	entry := style.RenderMarkup(v.String())

	if v.IsLive() {
		entry = icon.Get(icon.Live) + " " + entry
	}

	if airtime := v.Time.OrElse(""); airtime != "" {
		entry += " " + style.Faint(icon.Get(icon.Clock)+" "+airtime)
	}

	if score, ok := v.Score.Get(); ok {
		entry += " " + icon.Get(icon.Score) + " " + style.RenderMarkup(score)
	}

	return entry
}

func (m *menu) handlePlayState() error {
	// The selected entity crosses the playback boundary in its
	// transport form, the same way a handed-off listing entry would.
	entity, err := video.Decode(m.selected.Encode())
	if err != nil {
		return err
	}

	stopProgress := progress("Resolving stream..")
	url, err := m.deps.Streams.Resolve(entity, m.deps.MediaToken)
	stopProgress()
	if err != nil {
		fail(err.Error())
		m.selected = nil
		m.previousState()
		return nil
	}

	if m.options.URLOnly {
		fmt.Println(url)
		m.selected = nil
		m.previousState()
		return nil
	}

	player := viper.GetString(key.Player)
	log.Debugf("launching %s with %s", player, url)

	if err = open.RunWith(url, player); err != nil {
		fail(fmt.Sprintf("%s: %v", player, err))
	}

	m.selected = nil
	m.previousState()

	return nil
}
