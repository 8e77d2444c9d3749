package feed

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const homeDoc = `<?xml version="1.0" encoding="utf-8"?>
<Home>
  <HeadlineItems>
    <Item Type="BoxScore" Id="201"/>
    <Item Type="Article" Id="202"/>
    <Item Type="BoxScore" Id="203"/>
  </HeadlineItems>
</Home>`

const liveBoxDoc = `<?xml version="1.0" encoding="utf-8"?>
<Box>
  <LiveVideo>
    <Item>
      <Id>7001</Id>
      <Title>Sharks v Eels LIVE</Title>
      <Timestamp>2026-03-06T09:50:00Z</Timestamp>
      <FullImageUrl>https://cdn.test/live.jpg</FullImageUrl>
      <Video Id="5100" AccountId="66001" PolicyKey="BCpk-live" Type="B" PCode="P7"/>
    </Item>
  </LiveVideo>
</Box>`

const quietBoxDoc = `<?xml version="1.0" encoding="utf-8"?>
<Box>
  <Scoreboard/>
</Box>`

func TestBoxNumbers(t *testing.T) {
	Convey("BoxNumbers", t, func() {
		client, _ := testClient(map[string]string{"https://feeds.test/home": homeDoc})

		boxes, err := client.BoxNumbers()
		So(err, ShouldBeNil)

		Convey("Only box score headline items are extracted", func() {
			So(boxes, ShouldResemble, []string{"201", "203"})
		})
	})
}

func TestLiveMatches(t *testing.T) {
	Convey("LiveMatches", t, func() {
		client, fetcher := testClient(map[string]string{
			"https://feeds.test/home":    homeDoc,
			"https://feeds.test/box/201": liveBoxDoc,
			"https://feeds.test/box/203": quietBoxDoc,
		})

		listing, err := client.LiveMatches()
		So(err, ShouldBeNil)

		Convey("Each box is fetched sequentially after the index feed", func() {
			So(fetcher.calls, ShouldResemble, []string{
				"https://feeds.test/home",
				"https://feeds.test/box/201",
				"https://feeds.test/box/203",
			})
		})

		Convey("Boxes without a live-video section contribute nothing", func() {
			So(listing, ShouldHaveLength, 1)
		})

		Convey("Live items carry platform discriminators and the live flag", func() {
			v := listing[0]
			So(v.Title.MustGet(), ShouldEqual, "Sharks v Eels LIVE")
			So(v.VideoID.MustGet(), ShouldEqual, "5100")
			So(v.AccountID.MustGet(), ShouldEqual, "66001")
			So(v.PolicyKey.MustGet(), ShouldEqual, "BCpk-live")
			So(v.Type.MustGet(), ShouldEqual, "B")
			So(v.PCode.MustGet(), ShouldEqual, "P7")
			So(v.MatchID.MustGet(), ShouldEqual, "201")
			So(v.IsLive(), ShouldBeTrue)
		})
	})
}
