package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnsureASCII(t *testing.T) {
	Convey("EnsureASCII", t, func() {
		Convey("Leaves plain ASCII untouched", func() {
			So(EnsureASCII("Round 4 Highlights"), ShouldEqual, "Round 4 Highlights")
		})

		Convey("Decomposes accented latin characters", func() {
			So(EnsureASCII("Penrith café"), ShouldEqual, "Penrith cafe")
		})

		Convey("Drops characters with no ASCII form", func() {
			So(EnsureASCII("score 10–6 ★"), ShouldEqual, "score 106 ")
		})

		Convey("Empty input round-trips", func() {
			So(EnsureASCII(""), ShouldEqual, "")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "match", "matches"), ShouldEqual, "1 match")
		So(Quantify(3, "match", "matches"), ShouldEqual, "3 matches")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("highlights"), ShouldEqual, "Highlights")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
