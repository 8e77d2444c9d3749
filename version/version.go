// Package version provides unified mechanisms for application version tracking and update discovery.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/leaguecast-cli/leaguecast/network"
	"github.com/leaguecast-cli/leaguecast/util"
)

// releasesURL points at the remote update registry.
var releasesURL = "https://api.github.com/repos/leaguecast-cli/leaguecast/releases/latest"

// Latest retrieves the most recent stable application version identifier from the remote update registry.
func Latest() (version string, err error) {
	req, err := http.NewRequest(http.MethodGet, releasesURL, nil)
	if err != nil {
		return
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return
	}

	// Sanitization: Normalize the release identifier by stripping the 'v' prefix if present.
	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	return
}
