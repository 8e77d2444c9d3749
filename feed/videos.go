package feed

import (
	"fmt"
	"net/url"

	"github.com/leaguecast-cli/leaguecast/log"
	"github.com/leaguecast-cli/leaguecast/video"
	"github.com/samber/mo"
)

// categoryURL resolves a category name to its feed URL. Recognized categories
// target their topic feed; everything else falls back to the default video feed.
func (c *Client) categoryURL(category string) string {
	if topic, ok := c.cfg.CategoryTopics[category]; ok {
		return fmt.Sprintf(c.cfg.TopicsURL, url.QueryEscape(topic))
	}
	log.Debugf("category %q not in lookup table, using default feed", category)
	return c.cfg.VideoURL
}

// Videos lists the on-demand videos of a category (e.g. replays, highlights).
func (c *Client) Videos(category string) ([]*video.Video, error) {
	var doc mediaFeed
	if err := c.getXML(c.categoryURL(category), &doc); err != nil {
		return nil, err
	}

	var listing []*video.Video
	for _, section := range doc.Sections {
		for _, item := range section.Items {
			if item.Type != itemTypeVideo {
				continue
			}

			v := &video.Video{
				Title:  mo.Some(item.Title),
				Desc:   item.description(),
				Time:   mo.Some(item.Timestamp),
				Thumb:  mo.Some(item.ImageURL),
				LinkID: mo.Some(item.LinkID),
			}
			if item.Video != nil {
				v.VideoID = mo.Some(item.Video.ID)
				v.PolicyKey = mo.Some(item.Video.PolicyKey)
				v.AccountID = mo.Some(item.Video.AccountID)
			}
			listing = append(listing, v)
		}
	}
	return listing, nil
}
