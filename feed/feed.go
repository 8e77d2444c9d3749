// Package feed normalizes the video service's heterogeneous XML feeds into uniform Video entities.
//
// Five feed shapes are covered: the live/schedule feed, the score feed (upcoming
// fixtures and score lookups), the category topic feed, the per-box live feed and
// the box-index feed. A malformed document is a fatal parse error; an absent
// optional node degrades to an absent field, never an error.
package feed

import (
	"encoding/xml"
	"fmt"

	"github.com/leaguecast-cli/leaguecast/network"
)

// Config carries the injected feed endpoints and the category lookup table.
type Config struct {
	// VideoURL is the default video/schedule feed, also the fallback for unrecognized categories.
	VideoURL string
	// ScoreURL is the score feed used for upcoming fixtures and score lookups.
	ScoreURL string
	// HomeURL is the home feed listing headline items.
	HomeURL string
	// BoxURL is the per-box live feed template; %s receives the box identifier.
	BoxURL string
	// TopicsURL is the category topic feed template; %s receives the URL-encoded topic.
	TopicsURL string
	// CategoryTopics maps recognized category names to feed topics.
	CategoryTopics map[string]string
}

// Client parses the remote feeds into Video listings.
type Client struct {
	cfg   Config
	fetch network.Fetcher
}

// NewClient returns a feed client using the supplied configuration and transport.
func NewClient(cfg Config, fetcher network.Fetcher) *Client {
	return &Client{cfg: cfg, fetch: fetcher}
}

// itemTypeVideo is the item type discriminator marking playable video items.
// Everything else (news articles, text items) is excluded from listings.
const itemTypeVideo = "V"

// getXML fetches a feed document and unmarshals it into dst.
func (c *Client) getXML(url string, dst any) error {
	body, err := c.fetch.Fetch(url, nil)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal([]byte(body), dst); err != nil {
		return fmt.Errorf("parse feed %s: %w", url, err)
	}
	return nil
}
