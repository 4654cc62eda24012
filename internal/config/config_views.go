package config

import (
	"fmt"
	"time"
)

// API is the resolved endpoint view handed to the adapter.
type API struct {
	// BaseURL is the normalised API origin.
	BaseURL string
	// VerifySSL controls TLS certificate verification.
	VerifySSL bool
	// RequestTimeout bounds each API round trip.
	RequestTimeout time.Duration
}

// ExportConfig is the fully-resolved parameter object for the export CLI.
type ExportConfig struct {
	// API contains endpoint settings.
	API API
	// Auth contains the password-grant credentials.
	Auth AuthSettings
	// Export contains the workflow parameters.
	Export ExportSettings
	// Poll contains the polling policy.
	Poll PollSettings
}

// ScoreboardConfig is the fully-resolved parameter object for the scoreboard
// server.
type ScoreboardConfig struct {
	// API contains endpoint settings (live mode and snapshot capture).
	API API
	// Auth contains the credentials (live mode and snapshot capture).
	Auth AuthSettings
	// Scoreboard contains the server settings.
	Scoreboard ScoreboardSettings
}

// GetExportConfig builds and validates the export view from the merged
// structured configuration.
func GetExportConfig() (*ExportConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	exportCfg := &ExportConfig{
		API:    apiView(cfg),
		Auth:   cfg.Auth,
		Export: cfg.Export,
		Poll:   cfg.Poll,
	}

	return exportCfg, exportCfg.validate()
}

// GetScoreboardConfig builds and validates the scoreboard view from the
// merged structured configuration.
func GetScoreboardConfig() (*ScoreboardConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sbCfg := &ScoreboardConfig{
		API:        apiView(cfg),
		Auth:       cfg.Auth,
		Scoreboard: cfg.Scoreboard,
	}

	return sbCfg, sbCfg.validate()
}

func apiView(cfg *StructuredConfig) API {
	return API{
		BaseURL:        cfg.API.BaseURL,
		VerifySSL:      !cfg.API.InsecureSkipVerify,
		RequestTimeout: cfg.API.RequestTimeout,
	}
}

func (cfg *ExportConfig) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Export.MeetID == "" || cfg.Export.OutputDir == "" {
		return ErrInvalidExportConfigs
	}

	if cfg.Poll.Interval <= 0 || cfg.Poll.MaxAttempts <= 0 {
		return ErrInvalidPollConfigs
	}

	return nil
}

func (cfg *ScoreboardConfig) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	sb := cfg.Scoreboard

	switch sb.Mode {
	case "live":
		if sb.MeetID == "" {
			return ErrInvalidScoreboardConfigs
		}
		if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
			return ErrInvalidAuthConfigs
		}
	case "cache":
		if sb.CacheDir == "" {
			return ErrInvalidScoreboardConfigs
		}
	default:
		return ErrInvalidScoreboardConfigs
	}

	if sb.Snapshot {
		if sb.MeetID == "" || sb.CacheDir == "" {
			return ErrInvalidScoreboardConfigs
		}
		if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
			return ErrInvalidAuthConfigs
		}
	}

	if sb.Address == "" || sb.RefreshInterval <= 0 {
		return ErrInvalidScoreboardConfigs
	}

	return nil
}
