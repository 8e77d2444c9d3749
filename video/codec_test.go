package video

import (
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoundTrip(t *testing.T) {
	Convey("Encode/Decode", t, func() {
		Convey("Round-trips every ASCII field losslessly", func() {
			v := &Video{
				VideoID:   mo.Some("4815162342"),
				Thumb:     mo.Some("https://cdn.watchleague.tv/img.jpg?w=640&h=360"),
				Title:     mo.Some("Sharks v Eels Highlights"),
				Live:      mo.Some("true"),
				Time:      mo.Some("7:50 PM"),
				MatchID:   mo.Some("42"),
				Score:     mo.Some("[COLOR yellow]10 - 6[/COLOR]"),
				Desc:      mo.Some("Round 4 wrap"),
				LinkID:    mo.Some("9981"),
				AccountID: mo.Some("66001"),
				PolicyKey: mo.Some("BCpk-abc123"),
				Type:      mo.Some("B"),
				PCode:     mo.Some("P7"),
			}

			decoded, err := Decode(v.Encode())
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, v)
		})

		Convey("Absent fields stay absent after the round trip", func() {
			v := &Video{Title: mo.Some("Upcoming card"), Dummy: mo.Some("true")}

			decoded, err := Decode(v.Encode())
			So(err, ShouldBeNil)
			So(decoded.VideoID.IsAbsent(), ShouldBeTrue)
			So(decoded.PolicyKey.IsAbsent(), ShouldBeTrue)
			So(decoded.IsDummy(), ShouldBeTrue)
		})

		Convey("The thumbnail URL is percent-encoded as a full value", func() {
			v := &Video{Thumb: mo.Some("https://cdn.watchleague.tv/a.jpg?w=1&h=2")}

			encoded := v.Encode()
			So(encoded, ShouldContainSubstring, "thumb=https%3A%2F%2Fcdn.watchleague.tv%2Fa.jpg%3Fw%3D1%26h%3D2")

			decoded, err := Decode(encoded)
			So(err, ShouldBeNil)
			So(decoded.Thumb.MustGet(), ShouldEqual, "https://cdn.watchleague.tv/a.jpg?w=1&h=2")
		})

		Convey("Non-ASCII text round-trips on its ASCII-reducible form", func() {
			v := &Video{Title: mo.Some("Señor Café ★ Special")}

			decoded, err := Decode(v.Encode())
			So(err, ShouldBeNil)
			So(decoded.Title.MustGet(), ShouldEqual, "Senor Cafe  Special")
		})

		Convey("Every field is emitted even when absent", func() {
			encoded := (&Video{}).Encode()
			So(strings.Count(encoded, "="), ShouldEqual, len(fieldBindings))
			So(encoded, ShouldContainSubstring, "livestream_video=")
		})

		Convey("Unknown keys are ignored on decode", func() {
			decoded, err := Decode("title=Replay&bogus=1")
			So(err, ShouldBeNil)
			So(decoded.Title.MustGet(), ShouldEqual, "Replay")
		})

		Convey("A literal percent sign round-trips losslessly", func() {
			v := &Video{
				Title: mo.Some("100% Effort"),
				Desc:  mo.Some("Completion: 80%"),
			}

			decoded, err := Decode(v.Encode())
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, v)
		})

		Convey("A malformed pair is a decode error", func() {
			_, err := Decode("title")
			So(err, ShouldNotBeNil)
		})

		Convey("An invalid percent escape stays literal", func() {
			decoded, err := Decode("title=50%zz+off")
			So(err, ShouldBeNil)
			So(decoded.Title.MustGet(), ShouldEqual, "50%zz off")
		})
	})
}

func TestKind(t *testing.T) {
	Convey("Kind", t, func() {
		Convey("Type B selects the platform branch", func() {
			v := &Video{Type: mo.Some("B")}
			So(v.Kind(), ShouldEqual, KindPlatform)
		})

		Convey("Any other type selects the direct branch", func() {
			So((&Video{Type: mo.Some("A")}).Kind(), ShouldEqual, KindDirect)
			So((&Video{}).Kind(), ShouldEqual, KindDirect)
		})
	})
}

func TestFlags(t *testing.T) {
	Convey("Boolean-ish flags", t, func() {
		So((&Video{Live: mo.Some("true")}).IsLive(), ShouldBeTrue)
		So((&Video{Live: mo.Some("false")}).IsLive(), ShouldBeFalse)
		So((&Video{}).IsLive(), ShouldBeFalse)
		So((&Video{Dummy: mo.Some("True")}).IsDummy(), ShouldBeTrue)
	})
}
