// Package config assembles the configuration for the export CLI and the
// scoreboard server from three layers — environment variables, command-line
// flags, and an optional JSON file — merged in that order of precedence, with
// built-in defaults filling whatever remains unset.
//
// The core packages never read files or environment variables themselves;
// they receive the validated views ([ExportConfig], [ScoreboardConfig]) that
// the binaries obtain here.
package config

import "time"

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file (see GetStructuredConfig).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the Swimtopia endpoint settings shared by both binaries.
	API APISettings `envPrefix:"API_"`

	// Auth holds the OAuth password-grant credentials.
	Auth AuthSettings `envPrefix:"AUTH_"`

	// Export holds the export-workflow parameters.
	Export ExportSettings `envPrefix:"EXPORT_"`

	// Poll holds the status-polling policy.
	Poll PollSettings `envPrefix:"POLL_"`

	// Scoreboard holds the scoreboard server settings.
	Scoreboard ScoreboardSettings `envPrefix:"SCOREBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after env and flags.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// APISettings holds the Swimtopia endpoint settings.
type APISettings struct {
	// BaseURL is the API origin, e.g. "https://api.swimtopia.org".
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// InsecureSkipVerify disables TLS certificate verification. Off by
	// default; an operator opt-out for self-hosted or proxied endpoints.
	// Env: API_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// RequestTimeout bounds each API round trip (not the export download,
	// which is governed by the caller's context).
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// AuthSettings holds the password-grant credentials. Credentials are
// deliberately not exposed as flags; use the environment or the JSON file.
type AuthSettings struct {
	// Username is the Swimtopia login email. Env: AUTH_USERNAME
	Username string `env:"USERNAME"`

	// Password is the Swimtopia password. Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// ExportSettings holds the export-workflow parameters.
type ExportSettings struct {
	// MeetID identifies the meet to export. Env: EXPORT_MEET_ID
	MeetID string `env:"MEET_ID"`

	// ExportType is one of result, advancers, merge-entries,
	// merge-results. Env: EXPORT_TYPE
	ExportType string `env:"TYPE"`

	// ExportFormat is the archive format, normally "hy3".
	// Env: EXPORT_FORMAT
	ExportFormat string `env:"FORMAT"`

	// TeamFilter restricts the export to one team id; -1 means all teams.
	// Env: EXPORT_TEAM_FILTER
	TeamFilter int `env:"TEAM_FILTER"`

	// SessionFilter restricts the export to one meet session id; -1 means
	// all sessions. Env: EXPORT_SESSION_FILTER
	SessionFilter int `env:"SESSION_FILTER"`

	// OutputDir is where downloaded archives are written; created if
	// absent. Env: EXPORT_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// ListOnly makes the CLI list prior export tasks and exit. Flag only.
	ListOnly bool

	// NoDownload creates the export but skips the download stage. Flag only.
	NoDownload bool
}

// PollSettings holds the status-polling policy. The policy is configurable,
// never hardcoded, so operators can raise the ceiling for slow exports.
type PollSettings struct {
	// Interval is the sleep between status polls. Env: POLL_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxAttempts bounds the number of status polls before the workflow
	// gives up with a timeout. Env: POLL_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// ScoreboardSettings holds the scoreboard server settings.
type ScoreboardSettings struct {
	// Address is the listen address, host:port. Env: SCOREBOARD_ADDRESS
	Address string `env:"ADDRESS"`

	// Mode selects the data source: "live" (API) or "cache" (JSON
	// snapshots). Env: SCOREBOARD_MODE
	Mode string `env:"MODE"`

	// MeetID identifies the meet to display (live mode).
	// Env: SCOREBOARD_MEET_ID
	MeetID string `env:"MEET_ID"`

	// CacheDir is the snapshot directory (cache mode and snapshot
	// capture). Env: SCOREBOARD_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`

	// RefreshInterval is how often the background refresher re-assembles
	// the scoreboard. Env: SCOREBOARD_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// Snapshot makes the scoreboard binary capture API responses into
	// CacheDir and exit. Flag only.
	Snapshot bool
}

// GetStructuredConfig builds the merged configuration from environment
// variables, command-line flags, the optional JSON file, and the built-in
// defaults, in that order of precedence.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
