package feed

import (
	"strings"
	"time"
)

// feedTimestampLayout is the UTC wall-clock representation used by the score feed.
const feedTimestampLayout = "2006-01-02T15:04:05"

// now is replaceable in tests to pin the observer's local offset.
var now = time.Now

// localDelta computes the observer's current UTC offset. The zone database
// already accounts for daylight saving at the current instant.
func localDelta() time.Duration {
	_, offset := now().Zone()
	return time.Duration(offset) * time.Second
}

// Airtime converts a feed UTC timestamp into a local, human-formatted air time
// such as "Friday 6 Mar @ 7:50 PM", with no leading zero on the day-of-month.
// A timestamp outside the representable range yields an empty string; callers
// treat that as "unknown", never as an error.
func Airtime(timestamp string) string {
	ts, err := time.Parse(feedTimestampLayout, strings.TrimSuffix(timestamp, "Z"))
	if err != nil {
		return ""
	}

	return ts.Add(localDelta()).Format("Monday 2 Jan @ 3:04 PM")
}
