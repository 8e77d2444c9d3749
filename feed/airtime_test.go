package feed

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAirtime(t *testing.T) {
	restore := now
	defer func() { now = restore }()

	Convey("Airtime", t, func() {
		Convey("Formats a feed timestamp in the observer's zone", func() {
			aedt := time.FixedZone("AEDT", 11*3600)
			now = func() time.Time {
				return time.Date(2026, time.March, 6, 20, 50, 0, 0, aedt)
			}

			So(Airtime("2026-03-06T09:50:00Z"), ShouldEqual, "Friday 6 Mar @ 8:50 PM")
		})

		Convey("Strips the leading zero from the day of month", func() {
			now = func() time.Time {
				return time.Date(2026, time.March, 6, 9, 50, 0, 0, time.UTC)
			}

			So(Airtime("2026-03-06T09:50:00Z"), ShouldEqual, "Friday 6 Mar @ 9:50 AM")
		})

		Convey("An out-of-range timestamp yields an empty string, never an error", func() {
			So(Airtime("9999999-01-01T00:00:00Z"), ShouldEqual, "")
			So(Airtime("not a timestamp"), ShouldEqual, "")
			So(Airtime(""), ShouldEqual, "")
		})
	})
}
