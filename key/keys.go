// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Service - these keys manage authentication against the Trakt metadata catalog.
const (
	TraktClientID = "trakt.client_id"
)

// Torrent Index Providers - these keys manage the registration and ordering of candidate sources.
const (
	ProvidersPrimary   = "providers.primary"
	ProvidersSecondary = "providers.secondary"
)

// Candidate Filtering - these keys govern which search results survive aggregation.
const (
	FilterMinSeeders = "filter.min_seeders"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	TrendingLimit              = "trending.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Media Playback - these keys maintain the configuration for the external playback chain.
const (
	Player = "player.default"
)

// Networking - these keys tune the retry policy applied to the primary torrent index.
const (
	NetworkRetryAttempts = "network.retry_attempts"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
