// Package stream resolves a Video entity to a concrete, time-limited playback URL.
package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leaguecast-cli/leaguecast/auth"
	"github.com/leaguecast-cli/leaguecast/log"
	"github.com/leaguecast-cli/leaguecast/network"
	"github.com/leaguecast-cli/leaguecast/video"
)

// ErrNoSource indicates that no usable stream source exists for the entity.
// It is distinct from transport failures.
var ErrNoSource = errors.New("unable to locate video source")

// filterToken is the placeholder the direct stream API embeds in its HLS URLs.
const filterToken = "[[FILTER]]"

// Config carries the injected stream endpoints and the platform code.
type Config struct {
	// APIURL is the direct stream API template; %s receives the video identifier.
	APIURL string
	// PlatformURL is the third-party platform playback template; the two %s
	// receive the account and video identifiers.
	PlatformURL string
	// PlatformCode replaces the filter placeholder in direct-API HLS URLs.
	PlatformCode string
}

// Resolver turns a populated Video into a playable URL.
type Resolver struct {
	cfg   Config
	fetch network.Fetcher
	auth  *auth.Provider
	now   func() time.Time
}

// NewResolver returns a stream resolver using the supplied configuration, transport and authorization provider.
func NewResolver(cfg Config, fetcher network.Fetcher, provider *auth.Provider) *Resolver {
	return &Resolver{cfg: cfg, fetch: fetcher, auth: provider, now: time.Now}
}

// Resolve returns the playback URL for the entity, branching on its provider kind.
// The media auth token is only consulted on the platform branch; direct-API
// streams are returned unsigned regardless.
func (r *Resolver) Resolve(v *video.Video, mediaToken string) (string, error) {
	switch v.Kind() {
	case video.KindPlatform:
		return r.resolvePlatform(v, mediaToken)
	default:
		return r.resolveDirect(v)
	}
}

func (r *Resolver) resolveDirect(v *video.Video) (string, error) {
	videoID, ok := v.VideoID.Get()
	if !ok {
		return "", fmt.Errorf("%w: entity has no video id", ErrNoSource)
	}

	headers := map[string]string{
		"authorization": "basic " + r.auth.Credential(r.now()),
	}
	body, err := r.fetch.Fetch(fmt.Sprintf(r.cfg.APIURL, videoID), headers)
	if err != nil {
		return "", err
	}

	var payload struct {
		HLS string `json:"hls"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", fmt.Errorf("parse stream api response: %w", err)
	}
	if payload.HLS == "" {
		return "", fmt.Errorf("%w: stream api returned no hls url", ErrNoSource)
	}

	return strings.ReplaceAll(payload.HLS, filterToken, r.cfg.PlatformCode), nil
}

// platformSource is one rendition offered by the third-party platform.
type platformSource struct {
	Src         string `json:"src"`
	ExtXVersion string `json:"ext_x_version"`
}

func (r *Resolver) resolvePlatform(v *video.Video, mediaToken string) (string, error) {
	accountID, ok := v.AccountID.Get()
	if !ok {
		return "", fmt.Errorf("%w: platform entity has no account id", ErrNoSource)
	}
	videoID, ok := v.VideoID.Get()
	if !ok {
		return "", fmt.Errorf("%w: entity has no video id", ErrNoSource)
	}

	headers := map[string]string{"BCOV-POLICY": v.PolicyKey.OrElse("")}
	body, err := r.fetch.Fetch(fmt.Sprintf(r.cfg.PlatformURL, accountID, videoID), headers)
	if err != nil {
		return "", err
	}

	var payload struct {
		Sources []platformSource `json:"sources"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", fmt.Errorf("parse platform response: %w", err)
	}

	src := pickSource(payload.Sources)
	if src == "" {
		log.Errorf("no usable source among %d candidates", len(payload.Sources))
		return "", ErrNoSource
	}

	if mediaToken == "" {
		return src, nil
	}
	return r.auth.SignURL(src, mediaToken)
}

// pickSource selects among candidate renditions.
//
// A single candidate is used unconditionally. With multiple candidates the
// first whose ext_x_version is "4" and whose src uses a secure scheme wins;
// when no candidate qualifies, the last examined src is kept as an explicit
// fallback rather than failing outright.
func pickSource(sources []platformSource) string {
	if len(sources) == 1 {
		return sources[0].Src
	}

	var last string
	for _, s := range sources {
		if s.ExtXVersion == "4" && strings.HasPrefix(s.Src, "https") {
			return s.Src
		}
		last = s.Src
	}

	// Fallback on exhaustion: no rendition met the version/scheme preference.
	if last != "" {
		log.Debugf("no source matched the version/scheme preference, keeping last candidate")
	}
	return last
}
