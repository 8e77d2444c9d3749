package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		fetcher := NewFetcher()

		Convey("Strips a leading byte-order mark", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})
				_, _ = w.Write([]byte("<Feed/>"))
			}))
			defer srv.Close()

			body, err := fetcher.Fetch(srv.URL, nil)
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "<Feed/>")
		})

		Convey("Passes supplied headers and a default user agent", func() {
			var got http.Header
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Clone()
				_, _ = w.Write([]byte("ok"))
			}))
			defer srv.Close()

			_, err := fetcher.Fetch(srv.URL, map[string]string{"authorization": "basic abc"})
			So(err, ShouldBeNil)
			So(got.Get("authorization"), ShouldEqual, "basic abc")
			So(got.Get("User-Agent"), ShouldNotBeEmpty)
		})

		Convey("Non-2xx status is a fatal error", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer srv.Close()

			_, err := fetcher.Fetch(srv.URL, nil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "502")
		})

		Convey("Transport failure surfaces to the caller", func() {
			_, err := fetcher.Fetch("http://127.0.0.1:0/nope", nil)
			So(err, ShouldNotBeNil)
		})
	})
}
