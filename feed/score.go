package feed

import (
	"fmt"

	"github.com/leaguecast-cli/leaguecast/video"
	"github.com/samber/mo"
)

// upcomingTitle is the display format for fixtures that have not started yet.
const upcomingTitle = "[COLOR red]Upcoming:[/COLOR] %s v %s - [COLOR yellow]%s[/COLOR]"

// scoreFeed is the day/game document shape of the score feed.
type scoreFeed struct {
	Days []scoreDay `xml:"Day"`
}

type scoreDay struct {
	Games []scoreGame `xml:"Game"`
}

type scoreGame struct {
	ID              string    `xml:"Id,attr"`
	PercentComplete string    `xml:"PercentComplete"`
	Timestamp       string    `xml:"Timestamp"`
	HomeTeam        scoreTeam `xml:"HomeTeam"`
	AwayTeam        scoreTeam `xml:"AwayTeam"`
}

type scoreTeam struct {
	Name  string `xml:"Name,attr"`
	Score string `xml:"Score,attr"`
}

// Upcoming lists fixtures that have not started as dummy placeholder entities.
// A game counts as upcoming when its completion percentage is exactly zero.
func (c *Client) Upcoming() ([]*video.Video, error) {
	var doc scoreFeed
	if err := c.getXML(c.cfg.ScoreURL, &doc); err != nil {
		return nil, err
	}

	var listing []*video.Video
	for _, day := range doc.Days {
		for _, game := range day.Games {
			if game.PercentComplete != "0" {
				continue
			}

			airtime := Airtime(game.Timestamp)
			listing = append(listing, &video.Video{
				Title: mo.Some(fmt.Sprintf(upcomingTitle, game.HomeTeam.Name, game.AwayTeam.Name, airtime)),
				Dummy: mo.Some("true"),
			})
		}
	}
	return listing, nil
}

// Score looks up the current score for a match identifier.
// A match with no score feed entry yields None; callers treat that as
// "no score available yet", not as a failure.
func (c *Client) Score(matchID string) (mo.Option[string], error) {
	var doc scoreFeed
	if err := c.getXML(c.cfg.ScoreURL, &doc); err != nil {
		return mo.None[string](), err
	}

	for _, day := range doc.Days {
		for _, game := range day.Games {
			if game.ID == matchID {
				score := fmt.Sprintf("[COLOR yellow]%s - %s[/COLOR]", game.HomeTeam.Score, game.AwayTeam.Score)
				return mo.Some(score), nil
			}
		}
	}
	return mo.None[string](), nil
}
