package network

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/leaguecast-cli/leaguecast/constant"
	"github.com/leaguecast-cli/leaguecast/log"
)

// utf8BOM is the byte-order mark some feed documents carry at offset zero.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Fetcher performs a blocking HTTP GET and returns the decoded document text.
// Implementations fail fatally on any transport error; callers never retry.
type Fetcher interface {
	Fetch(url string, headers map[string]string) (string, error)
}

// HTTPFetcher is the production Fetcher backed by the shared tuned client.
type HTTPFetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher using the shared application HTTP client.
func NewFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: Client}
}

// Fetch performs an HTTP GET, applies the supplied headers, strips a leading
// UTF-8 byte-order mark and returns the body as text.
func (f *HTTPFetcher) Fetch(url string, headers map[string]string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	log.Debugf("fetching %s", url)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", url, err)
	}

	return string(bytes.TrimPrefix(body, utf8BOM)), nil
}
