package config

import (
	"testing"

	"github.com/leaguecast-cli/leaguecast/filesystem"
	"github.com/leaguecast-cli/leaguecast/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Config setup", t, func() {
		viper.Reset()
		So(Setup(), ShouldBeNil)

		Convey("Factory defaults should be registered", func() {
			So(viper.GetString(key.StreamUsername), ShouldEqual, "mobile-app-league")
			So(viper.GetInt(key.MenuListLimit), ShouldEqual, 50)
			So(viper.GetBool(key.MenuShowScores), ShouldBeTrue)
		})

		Convey("Category lookup table should be a string map", func() {
			topics := viper.GetStringMapString(key.FeedCategoryTopics)
			So(topics["Match Replays"], ShouldEqual, "match-replays")
			So(topics["Match Highlights"], ShouldEqual, "match-highlights")
		})

		Convey("Missing config file is not an error", func() {
			So(Setup(), ShouldBeNil)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default[key.StreamSecret]

		Convey("Env name carries the application prefix", func() {
			So(f.Env(), ShouldEqual, "LEAGUECAST_STREAM_SECRET")
		})

		Convey("Type names cover registered value kinds", func() {
			limit := Default[key.MenuListLimit]
			topics := Default[key.FeedCategoryTopics]
			So(limit.typeName(), ShouldEqual, "int")
			So(topics.typeName(), ShouldEqual, "map[string]string")
			So(f.typeName(), ShouldEqual, "string")
		})
	})
}
