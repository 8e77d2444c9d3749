package feed

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const scheduleFeed = `<?xml version="1.0" encoding="utf-8"?>
<Feed>
  <MediaSection>
    <Item Type="N">
      <Title>League news wrap</Title>
    </Item>
    <Item Type="V">
      <Title>Better Choices: community announcement</Title>
      <LiveNow>true</LiveNow>
      <Video Id="100"/>
      <FullImageUrl>https://cdn.test/promo.jpg</FullImageUrl>
      <Date>Friday, 6 March 2026  7:50 PM</Date>
    </Item>
    <Item Type="V">
      <Title>Sharks v Eels</Title>
      <Description>Round 4 clash</Description>
      <LiveNow>true</LiveNow>
      <Video Id="4815"/>
      <FullImageUrl>https://cdn.test/sharks.jpg</FullImageUrl>
      <Date>Friday, 6 March 2026  7:50 PM</Date>
    </Item>
    <Item Type="V">
      <Title>Roosters v Storm</Title>
      <LiveNow></LiveNow>
      <Video Id="4816"/>
      <FullImageUrl>https://cdn.test/roosters.jpg</FullImageUrl>
      <Date>Saturday, 7 March 2026  5:30 PM</Date>
    </Item>
  </MediaSection>
</Feed>`

func TestMatches(t *testing.T) {
	Convey("Matches", t, func() {
		client, _ := testClient(map[string]string{
			"https://feeds.test/video": scheduleFeed,
		})

		listing, err := client.Matches()
		So(err, ShouldBeNil)

		Convey("Only live video items survive the filters", func() {
			So(listing, ShouldHaveLength, 1)
			So(listing[0].Title.MustGet(), ShouldEqual, "Sharks v Eels")
		})

		Convey("Fields are populated from the item nodes", func() {
			So(listing[0].VideoID.MustGet(), ShouldEqual, "4815")
			So(listing[0].Desc.MustGet(), ShouldEqual, "Round 4 clash")
			So(listing[0].Thumb.MustGet(), ShouldEqual, "https://cdn.test/sharks.jpg")
		})

		Convey("The time field is the date stripped past the first double space", func() {
			So(listing[0].Time.MustGet(), ShouldEqual, "7:50 PM")
		})
	})

	Convey("Matches with a description node missing or empty", t, func() {
		doc := `<Feed><MediaSection>
			<Item Type="V"><Title>No desc</Title><LiveNow>true</LiveNow><Video Id="1"/><Date>d</Date></Item>
			<Item Type="V"><Title>Empty desc</Title><Description></Description><LiveNow>true</LiveNow><Video Id="2"/><Date>d</Date></Item>
		</MediaSection></Feed>`
		client, _ := testClient(map[string]string{"https://feeds.test/video": doc})

		listing, err := client.Matches()
		So(err, ShouldBeNil)
		So(listing, ShouldHaveLength, 2)
		So(listing[0].Desc.IsAbsent(), ShouldBeTrue)
		So(listing[1].Desc.IsAbsent(), ShouldBeTrue)
	})

	Convey("A malformed document is a fatal parse error", t, func() {
		client, _ := testClient(map[string]string{"https://feeds.test/video": "<Feed><MediaSection>"})

		_, err := client.Matches()
		So(err, ShouldNotBeNil)
	})
}

func TestTrimFeedDate(t *testing.T) {
	Convey("trimFeedDate", t, func() {
		So(trimFeedDate("Friday, 6 March 2026  7:50 PM"), ShouldEqual, "7:50 PM")
		So(trimFeedDate("no double space"), ShouldEqual, "no double space")
		So(trimFeedDate(""), ShouldEqual, "")
	})
}
