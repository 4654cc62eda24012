package config

import "errors"

// Validation errors returned by the config views when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid endpoint settings (missing
	// base URL or zero request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidAuthConfigs indicates missing credentials.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidExportConfigs indicates invalid export parameters (missing
	// meet id or empty output directory).
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidPollConfigs indicates a non-positive poll interval or
	// attempt budget.
	ErrInvalidPollConfigs = errors.New("invalid poll configuration")
	// ErrInvalidScoreboardConfigs indicates invalid scoreboard settings
	// (unknown mode, missing meet id in live mode, or missing cache dir in
	// cache mode).
	ErrInvalidScoreboardConfigs = errors.New("invalid scoreboard configuration")
)
