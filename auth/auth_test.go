package auth

import (
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

type stubFetcher struct {
	body    string
	err     error
	lastURL string
	headers map[string]string
}

func (s *stubFetcher) Fetch(url string, headers map[string]string) (string, error) {
	s.lastURL = url
	s.headers = headers
	return s.body, s.err
}

func TestCredential(t *testing.T) {
	Convey("Credential", t, func() {
		provider := NewProvider(Config{Secret: "shhh", Username: "mobile-app-league"}, nil)

		Convey("Matches the documented derivation", func() {
			now := time.Date(2026, 3, 6, 9, 10, 0, 0, time.UTC)

			digest := sha1.Sum([]byte("shhh2026-03-06T09:00"))
			password := base64.StdEncoding.EncodeToString(digest[:])
			expected := base64.StdEncoding.EncodeToString(
				[]byte(fmt.Sprintf("mobile-app-league:%s", password)))

			So(provider.Credential(now), ShouldEqual, expected)
		})

		Convey("Is stable within one 30-minutes-ahead hour bucket", func() {
			early := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
			late := time.Date(2026, 3, 6, 9, 29, 59, 0, time.UTC)

			So(provider.Credential(early), ShouldEqual, provider.Credential(late))
		})

		Convey("Changes when the hour bucket rolls over", func() {
			before := time.Date(2026, 3, 6, 9, 29, 0, 0, time.UTC)
			after := time.Date(2026, 3, 6, 9, 31, 0, 0, time.UTC)

			So(provider.Credential(before), ShouldNotEqual, provider.Credential(after))
		})

		Convey("Uses UTC regardless of the input zone", func() {
			utc := time.Date(2026, 3, 6, 9, 10, 0, 0, time.UTC)
			shifted := utc.In(time.FixedZone("AEDT", 11*3600))

			So(provider.Credential(shifted), ShouldEqual, provider.Credential(utc))
		})
	})
}

func TestSignURL(t *testing.T) {
	Convey("SignURL", t, func() {
		cfg := Config{SignURL: "https://api.test/sign?url=%s"}

		Convey("A success response yields the signed URL", func() {
			fetcher := &stubFetcher{body: `{"message":"SUCCESS","url":"https://signed"}`}
			provider := NewProvider(cfg, fetcher)

			signed, err := provider.SignURL("https://unsigned/master.m3u8?a=1", "tok123")
			So(err, ShouldBeNil)
			So(signed, ShouldEqual, "https://signed")

			Convey("The target URL is percent-encoded into the endpoint", func() {
				So(fetcher.lastURL, ShouldEqual,
					"https://api.test/sign?url=https%3A%2F%2Funsigned%2Fmaster.m3u8%3Fa%3D1")
			})

			Convey("The media token rides in the authorization header", func() {
				So(fetcher.headers["authorization"], ShouldEqual, "JWTtok123")
			})
		})

		Convey("A non-success response is a fatal signing failure", func() {
			fetcher := &stubFetcher{body: `{"message":"DENIED"}`}
			provider := NewProvider(cfg, fetcher)

			_, err := provider.SignURL("https://unsigned", "tok123")
			So(errors.Is(err, ErrSigningFailed), ShouldBeTrue)
		})

		Convey("A transport failure surfaces unchanged", func() {
			fetcher := &stubFetcher{err: errors.New("boom")}
			provider := NewProvider(cfg, fetcher)

			_, err := provider.SignURL("https://unsigned", "tok123")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrSigningFailed), ShouldBeFalse)
		})

		Convey("A malformed body is a parse error", func() {
			fetcher := &stubFetcher{body: "not json"}
			provider := NewProvider(cfg, fetcher)

			_, err := provider.SignURL("https://unsigned", "tok123")
			So(err, ShouldNotBeNil)
		})
	})
}
