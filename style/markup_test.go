package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStripMarkup(t *testing.T) {
	Convey("StripMarkup", t, func() {
		Convey("Removes a single span", func() {
			So(StripMarkup("[COLOR yellow]10 - 6[/COLOR]"), ShouldEqual, "10 - 6")
		})

		Convey("Removes multiple spans and keeps surrounding text", func() {
			in := "[COLOR red]Upcoming:[/COLOR] Sharks v Eels - [COLOR yellow]Friday 7 Mar @ 7:50 PM[/COLOR]"
			So(StripMarkup(in), ShouldEqual, "Upcoming: Sharks v Eels - Friday 7 Mar @ 7:50 PM")
		})

		Convey("Leaves plain text untouched", func() {
			So(StripMarkup("no markup here"), ShouldEqual, "no markup here")
		})
	})
}

func TestRenderMarkup(t *testing.T) {
	Convey("RenderMarkup", t, func() {
		Convey("Preserves the span text content", func() {
			out := RenderMarkup("[COLOR yellow]10 - 6[/COLOR]")
			So(out, ShouldContainSubstring, "10 - 6")
			So(out, ShouldNotContainSubstring, "[COLOR")
		})

		Convey("Unknown color names do not break rendering", func() {
			out := RenderMarkup("[COLOR nonsense]text[/COLOR]")
			So(out, ShouldContainSubstring, "text")
		})
	})
}
