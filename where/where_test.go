package where

import (
	"os"
	"strings"
	"testing"

	"github.com/leaguecast-cli/leaguecast/constant"
	"github.com/leaguecast-cli/leaguecast/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPaths(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Path resolution", t, func() {
		Convey("Config honors the override environment variable", func() {
			So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
			defer func() { _ = os.Unsetenv(EnvConfigPath) }()

			So(Config(), ShouldEqual, "/custom/config")
		})

		Convey("Config falls back to the user config directory", func() {
			So(strings.Contains(Config(), constant.Leaguecast), ShouldBeTrue)
		})

		Convey("Logs lives inside the config directory", func() {
			So(strings.HasPrefix(Logs(), Config()), ShouldBeTrue)
		})

		Convey("Temp lives inside the system temp directory", func() {
			So(strings.Contains(Temp(), constant.Leaguecast), ShouldBeTrue)
		})
	})
}
