package feed

import (
	"encoding/xml"
	"fmt"

	"github.com/leaguecast-cli/leaguecast/video"
	"github.com/samber/mo"
)

// boxScoreType marks headline items referencing a per-game live-data box.
const boxScoreType = "BoxScore"

// homeFeed is the headline document listing box score references.
type homeFeed struct {
	XMLName   xml.Name
	Headlines []headlineItem `xml:"HeadlineItems>Item"`
}

type headlineItem struct {
	Type string `xml:"Type,attr"`
	ID   string `xml:"Id,attr"`
}

// boxFeed is the per-box document; the live-video section is optional.
type boxFeed struct {
	XMLName   xml.Name
	LiveVideo *liveVideoSection `xml:"LiveVideo"`
}

type liveVideoSection struct {
	Items []mediaItem `xml:"Item"`
}

// BoxNumbers extracts the box identifiers referenced by the home feed.
// Pure extraction: no filtering beyond the headline type check.
func (c *Client) BoxNumbers() ([]string, error) {
	var doc homeFeed
	if err := c.getXML(c.cfg.HomeURL, &doc); err != nil {
		return nil, err
	}

	var boxes []string
	for _, item := range doc.Headlines {
		if item.Type == boxScoreType {
			boxes = append(boxes, item.ID)
		}
	}
	return boxes, nil
}

// LiveMatches lists the live streams of every box referenced by the home feed.
// Boxes are fetched sequentially, one blocking request each; a box without a
// live-video section contributes nothing.
func (c *Client) LiveMatches() ([]*video.Video, error) {
	boxes, err := c.BoxNumbers()
	if err != nil {
		return nil, err
	}

	var listing []*video.Video
	for _, box := range boxes {
		var doc boxFeed
		if err := c.getXML(fmt.Sprintf(c.cfg.BoxURL, box), &doc); err != nil {
			return nil, err
		}
		if doc.LiveVideo == nil {
			continue
		}

		for _, item := range doc.LiveVideo.Items {
			if item.Video == nil {
				return nil, fmt.Errorf("parse box feed %s: live item %q has no video node", box, item.Title)
			}

			listing = append(listing, &video.Video{
				Title:     mo.Some(item.Title),
				Time:      mo.Some(item.Timestamp),
				VideoID:   mo.Some(item.Video.ID),
				AccountID: mo.Some(item.Video.AccountID),
				PolicyKey: mo.Some(item.Video.PolicyKey),
				Type:      mo.Some(item.Video.Type),
				PCode:     mo.Some(item.Video.PCode),
				Thumb:     mo.Some(item.ImageURL),
				LinkID:    mo.Some(item.LinkID),
				MatchID:   mo.Some(box),
				Live:      mo.Some("true"),
			})
		}
	}
	return listing, nil
}
