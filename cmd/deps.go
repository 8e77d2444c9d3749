// Package cmd implements the command-line interface for leaguecast.
package cmd

import (
	"github.com/spf13/viper"

	"github.com/leaguecast-cli/leaguecast/auth"
	"github.com/leaguecast-cli/leaguecast/feed"
	"github.com/leaguecast-cli/leaguecast/key"
	"github.com/leaguecast-cli/leaguecast/log"
	"github.com/leaguecast-cli/leaguecast/menu"
	"github.com/leaguecast-cli/leaguecast/network"
	"github.com/leaguecast-cli/leaguecast/stream"
)

// feedConfig assembles the catalog endpoints from the active configuration.
func feedConfig() feed.Config {
	return feed.Config{
		VideoURL:       viper.GetString(key.FeedVideoURL),
		ScoreURL:       viper.GetString(key.FeedScoreURL),
		HomeURL:        viper.GetString(key.FeedHomeURL),
		BoxURL:         viper.GetString(key.FeedBoxURL),
		TopicsURL:      viper.GetString(key.FeedTopicsURL),
		CategoryTopics: viper.GetStringMapString(key.FeedCategoryTopics),
	}
}

// authConfig assembles the credential material from the active configuration.
func authConfig() auth.Config {
	return auth.Config{
		Secret:   viper.GetString(key.StreamSecret),
		Username: viper.GetString(key.StreamUsername),
		SignURL:  viper.GetString(key.StreamSignURL),
	}
}

// streamConfig assembles the playback endpoints from the active configuration.
func streamConfig() stream.Config {
	return stream.Config{
		APIURL:       viper.GetString(key.StreamAPIURL),
		PlatformURL:  viper.GetString(key.StreamPlatformURL),
		PlatformCode: viper.GetString(key.StreamPlatformCode),
	}
}

// menuDeps wires the shared collaborators used by interactive and one-shot commands alike.
func menuDeps() menu.Deps {
	fetcher := network.NewFetcher()

	token, err := auth.GetToken()
	if err != nil {
		log.Debugf("no stored media token: %v", err)
	}

	return menu.Deps{
		Feeds:      feed.NewClient(feedConfig(), fetcher),
		Streams:    stream.NewResolver(streamConfig(), fetcher, auth.NewProvider(authConfig(), fetcher)),
		MediaToken: token,
	}
}
