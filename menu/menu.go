// Package menu implements a lightweight, menu-driven interface for browsing listings and launching playback.
package menu

import (
	"os"

	"github.com/leaguecast-cli/leaguecast/feed"
	"github.com/leaguecast-cli/leaguecast/stream"
	"github.com/leaguecast-cli/leaguecast/util"
	"github.com/leaguecast-cli/leaguecast/video"
)

var truncateAt = 100

// Options controls playback behavior of the interactive session.
type Options struct {
	// URLOnly prints the resolved stream URL instead of launching the player.
	URLOnly bool
}

// Deps carries the injected collaborators of the interactive session.
type Deps struct {
	Feeds      *feed.Client
	Streams    *stream.Resolver
	MediaToken string
}

type menu struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	deps    Deps
	options *Options

	section        *section
	cachedListings map[string][]*video.Video
	selected       *video.Video
}

func newMenu(deps Deps, options *Options) *menu {
	return &menu{
		statesHistory:  util.Stack[state]{},
		deps:           deps,
		options:        options,
		cachedListings: make(map[string][]*video.Video),
	}
}

func (m *menu) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *menu) setState(s state) {
	m.state = s
}

func (m *menu) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

// Run drives the interactive session until the user quits or an operation fails fatally.
func Run(deps Deps, options *Options) error {
	m := newMenu(deps, options)
	m.state = sectionSelectState

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *menu) handleState() error {
	switch m.state {
	case sectionSelectState:
		return m.handleSectionSelectState()
	case listingSelectState:
		return m.handleListingSelectState()
	case playState:
		return m.handlePlayState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
