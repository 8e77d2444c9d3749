package menu

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/leaguecast-cli/leaguecast/video"
)

func TestListingEntries(t *testing.T) {
	Convey("listingEntries", t, func() {
		Convey("Keeps one entry per video even when renders collide", func() {
			videos := []*video.Video{
				{Title: mo.Some("Sharks v Eels"), VideoID: mo.Some("1001")},
				{Title: mo.Some("Sharks v Eels"), VideoID: mo.Some("1002")},
			}

			entries := listingEntries(videos)
			So(entries, ShouldHaveLength, 2)
			So(entries[0], ShouldEqual, entries[1])
		})

		Convey("Entry order matches listing order", func() {
			videos := []*video.Video{
				{Title: mo.Some("First half")},
				{Title: mo.Some("Second half")},
			}

			entries := listingEntries(videos)
			So(entries[0], ShouldContainSubstring, "First half")
			So(entries[1], ShouldContainSubstring, "Second half")
		})
	})
}
