package feed

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/leaguecast-cli/leaguecast/video"
	"github.com/samber/mo"
)

// promoTitlePrefix marks public-service promotional items excluded from match listings.
const promoTitlePrefix = "Better Choices"

// mediaFeed is the shared document shape of the schedule and category topic feeds.
type mediaFeed struct {
	XMLName  xml.Name
	Sections []mediaSection `xml:"MediaSection"`
}

type mediaSection struct {
	Items []mediaItem `xml:"Item"`
}

type mediaItem struct {
	Type        string     `xml:"Type,attr"`
	Title       string     `xml:"Title"`
	Description *textNode  `xml:"Description"`
	LiveNow     string     `xml:"LiveNow"`
	Date        string     `xml:"Date"`
	Timestamp   string     `xml:"Timestamp"`
	ImageURL    string     `xml:"FullImageUrl"`
	LinkID      string     `xml:"Id"`
	Video       *videoNode `xml:"Video"`
}

// textNode distinguishes an absent element from an element with empty text.
type textNode struct {
	Text string `xml:",chardata"`
}

type videoNode struct {
	ID        string `xml:"Id,attr"`
	PolicyKey string `xml:"PolicyKey,attr"`
	AccountID string `xml:"AccountId,attr"`
	Type      string `xml:"Type,attr"`
	PCode     string `xml:"PCode,attr"`
}

// description returns the item's description when the node exists and carries text.
// Absence at either level degrades to an absent value.
func (i *mediaItem) description() mo.Option[string] {
	if i.Description == nil || i.Description.Text == "" {
		return mo.None[string]()
	}
	return mo.Some(i.Description.Text)
}

// Matches lists currently live matches from the schedule feed.
// Non-video items, promotional items and items without a LiveNow marker are skipped.
func (c *Client) Matches() ([]*video.Video, error) {
	var doc mediaFeed
	if err := c.getXML(c.cfg.VideoURL, &doc); err != nil {
		return nil, err
	}

	var listing []*video.Video
	for _, section := range doc.Sections {
		for _, item := range section.Items {
			if item.Type != itemTypeVideo {
				continue
			}
			if strings.HasPrefix(item.Title, promoTitlePrefix) {
				continue
			}
			if item.LiveNow == "" {
				continue
			}
			if item.Video == nil {
				return nil, fmt.Errorf("parse schedule feed: live item %q has no video node", item.Title)
			}

			listing = append(listing, &video.Video{
				Title:   mo.Some(item.Title),
				Desc:    item.description(),
				VideoID: mo.Some(item.Video.ID),
				Thumb:   mo.Some(item.ImageURL),
				Time:    mo.Some(trimFeedDate(item.Date)),
			})
		}
	}
	return listing, nil
}

// trimFeedDate strips everything up to and including the first double space of
// the feed's raw date string, leaving the display time portion.
func trimFeedDate(date string) string {
	if idx := strings.Index(date, "  "); idx >= 0 {
		return date[idx+2:]
	}
	return date
}
