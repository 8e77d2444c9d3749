package feed

import (
	"errors"
)

// stubFetcher serves canned documents keyed by URL and records every request.
type stubFetcher struct {
	responses map[string]string
	calls     []string
}

func (s *stubFetcher) Fetch(url string, headers map[string]string) (string, error) {
	s.calls = append(s.calls, url)
	if body, ok := s.responses[url]; ok {
		return body, nil
	}
	return "", errors.New("unexpected fetch: " + url)
}

func testConfig() Config {
	return Config{
		VideoURL:  "https://feeds.test/video",
		ScoreURL:  "https://feeds.test/score",
		HomeURL:   "https://feeds.test/home",
		BoxURL:    "https://feeds.test/box/%s",
		TopicsURL: "https://feeds.test/topics/%s",
		CategoryTopics: map[string]string{
			"Match Highlights": "match-highlights",
			"Match Replays":    "match replays",
		},
	}
}

func testClient(responses map[string]string) (*Client, *stubFetcher) {
	fetcher := &stubFetcher{responses: responses}
	return NewClient(testConfig(), fetcher), fetcher
}
