package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/leaguecast-cli/leaguecast/video"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty listing", func() {
			var buf bytes.Buffer
			err := writeJson(&buf, "live", nil)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Section, ShouldEqual, "live")
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Should strip scoreboard markup and carry the transport form", func() {
			var buf bytes.Buffer
			v := &video.Video{
				Title: mo.Some("Eels v Sharks [COLOR yellow]12 - 8[/COLOR]"),
				Live:  mo.Some("true"),
			}

			err := writeJson(&buf, "live", []*video.Video{v})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Title, ShouldEqual, "Eels v Sharks 12 - 8")
			So(output.Result[0].Live, ShouldBeTrue)
			So(output.Result[0].Encoded, ShouldContainSubstring, "live=true")
		})
	})
}

func TestParsePicker(t *testing.T) {
	Convey("ParsePicker", t, func() {
		listing := []*video.Video{
			{Title: mo.Some("one")},
			{Title: mo.Some("two")},
			{Title: mo.Some("three")},
		}

		Convey("Should select the first entry", func() {
			pick, err := ParsePicker("first")
			So(err, ShouldBeNil)
			So(pick(listing), ShouldEqual, listing[0])
		})

		Convey("Should select the last entry", func() {
			pick, err := ParsePicker("last")
			So(err, ShouldBeNil)
			So(pick(listing), ShouldEqual, listing[2])
		})

		Convey("Should select an entry by index", func() {
			pick, err := ParsePicker("1")
			So(err, ShouldBeNil)
			So(pick(listing), ShouldEqual, listing[1])
		})

		Convey("Should return nil for an out-of-range index", func() {
			pick, err := ParsePicker("9")
			So(err, ShouldBeNil)
			So(pick(listing), ShouldBeNil)
		})

		Convey("Should reject malformed selectors", func() {
			_, err := ParsePicker("loudest")
			So(err, ShouldNotBeNil)
		})

		Convey("Should return nil on an empty listing", func() {
			pick, err := ParsePicker("first")
			So(err, ShouldBeNil)
			So(pick(nil), ShouldBeNil)
		})
	})
}

func TestSections(t *testing.T) {
	Convey("Sections", t, func() {
		Convey("Should expose every registered loader", func() {
			So(Sections(), ShouldHaveLength, len(sectionLoaders))
			So(Sections(), ShouldContain, "live")
			So(Sections(), ShouldContain, "upcoming")
		})

		Convey("Unknown sections should suggest the closest match", func() {
			err := errUnknownSection("lve")
			So(err.Error(), ShouldContainSubstring, "live")
		})
	})
}
