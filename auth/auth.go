// Package auth computes stream authorization credentials and performs the URL-signing exchange.
package auth

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/leaguecast-cli/leaguecast/network"
)

// ErrSigningFailed indicates a non-success response from the signing exchange.
// It is fatal and never retried.
var ErrSigningFailed = errors.New("signing failed")

// bucketLayout truncates the target timestamp to the top of the hour.
const bucketLayout = "2006-01-02T15:00"

// Config carries the injected credential material and the signing endpoint.
type Config struct {
	// Secret is the shared secret concatenated with the time bucket.
	Secret string
	// Username is paired with the derived password in the credential.
	Username string
	// SignURL is the signing endpoint template; %s receives the URL-encoded target URL.
	SignURL string
}

// Provider derives authorization credentials and signs stream URLs.
type Provider struct {
	cfg   Config
	fetch network.Fetcher
}

// NewProvider returns an authorization provider using the supplied configuration and transport.
func NewProvider(cfg Config, fetcher network.Fetcher) *Provider {
	return &Provider{cfg: cfg, fetch: fetcher}
}

// Credential computes the time-bucketed authorization header value for the direct stream API.
//
// The timestamp is 30 minutes ahead of now, truncated to the top of the hour,
// so the credential stays valid across the adjacent hour bucket. Callers must
// recompute it per request; it is never memoized across bucket boundaries.
func (p *Provider) Credential(now time.Time) string {
	bucket := now.UTC().Add(30 * time.Minute).Format(bucketLayout)

	digest := sha1.Sum([]byte(p.cfg.Secret + bucket))
	password := base64.StdEncoding.EncodeToString(digest[:])

	pair := fmt.Sprintf("%s:%s", p.cfg.Username, password)
	return base64.StdEncoding.EncodeToString([]byte(pair))
}

// SignURL exchanges an unsigned stream URL plus the caller's media auth token
// for a time-limited signed URL. Any response without the success marker is a
// fatal signing failure.
func (p *Provider) SignURL(src, mediaToken string) (string, error) {
	endpoint := fmt.Sprintf(p.cfg.SignURL, url.QueryEscape(src))

	body, err := p.fetch.Fetch(endpoint, map[string]string{
		"authorization": "JWT" + mediaToken,
	})
	if err != nil {
		return "", err
	}

	var signed struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal([]byte(body), &signed); err != nil {
		return "", fmt.Errorf("parse signing response: %w", err)
	}

	if signed.Message != "SUCCESS" {
		return "", fmt.Errorf("%w: %s", ErrSigningFailed, signed.Message)
	}
	return signed.URL, nil
}
