package where

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsan-cli/streamsan/filesystem"
)

func TestConfig(t *testing.T) {
	Convey("Config path", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Should honor the override environment variable", func() {
			So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, "/custom/config")
		})
	})
}

func TestDerivedPaths(t *testing.T) {
	Convey("Derived paths", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
		defer os.Unsetenv(EnvConfigPath)

		Convey("Logs should live under the config directory", func() {
			So(Logs(), ShouldEqual, filepath.Join("/custom/config", "logs"))
		})

		Convey("Queries and trending should live under the cache directory", func() {
			So(filepath.Dir(Queries()), ShouldEqual, Cache())
			So(filepath.Dir(Trending()), ShouldEqual, Cache())
		})
	})
}
