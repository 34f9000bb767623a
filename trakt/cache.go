package trakt

import (
	"github.com/metafates/gache"
	"github.com/streamsan-cli/streamsan/filesystem"
	"github.com/streamsan-cli/streamsan/source"
	"github.com/streamsan-cli/streamsan/where"
)

var trendingCacher = gache.New[[]*source.Media](
	&gache.Options{
		Path:       where.Trending(),
		Lifetime:   trendingCacheLifetime,
		FileSystem: &filesystem.GacheFs{},
	},
)
