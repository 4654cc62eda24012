package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"API_BASE_URL":             "https://api.swimtopia.org",
		"API_INSECURE_SKIP_VERIFY": "true",
		"API_REQUEST_TIMEOUT":      "45s",

		"AUTH_USERNAME": "coach@club.org",
		"AUTH_PASSWORD": "secret",

		"EXPORT_MEET_ID":        "107684",
		"EXPORT_TYPE":           "result",
		"EXPORT_FORMAT":         "hy3",
		"EXPORT_TEAM_FILTER":    "42",
		"EXPORT_SESSION_FILTER": "7",
		"EXPORT_OUTPUT_DIR":     "/tmp/exports",

		"POLL_INTERVAL":     "3s",
		"POLL_MAX_ATTEMPTS": "60",

		"SCOREBOARD_ADDRESS":          "0.0.0.0:5000",
		"SCOREBOARD_MODE":             "live",
		"SCOREBOARD_MEET_ID":          "107684",
		"SCOREBOARD_CACHE_DIR":        "/tmp/api_cache",
		"SCOREBOARD_REFRESH_INTERVAL": "15s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.swimtopia.org", cfg.API.BaseURL)
	assert.True(t, cfg.API.InsecureSkipVerify)
	assert.Equal(t, 45*time.Second, cfg.API.RequestTimeout)

	assert.Equal(t, "coach@club.org", cfg.Auth.Username)
	assert.Equal(t, "secret", cfg.Auth.Password)

	assert.Equal(t, "107684", cfg.Export.MeetID)
	assert.Equal(t, "result", cfg.Export.ExportType)
	assert.Equal(t, "hy3", cfg.Export.ExportFormat)
	assert.Equal(t, 42, cfg.Export.TeamFilter)
	assert.Equal(t, 7, cfg.Export.SessionFilter)
	assert.Equal(t, "/tmp/exports", cfg.Export.OutputDir)

	assert.Equal(t, 3*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 60, cfg.Poll.MaxAttempts)

	assert.Equal(t, "0.0.0.0:5000", cfg.Scoreboard.Address)
	assert.Equal(t, "live", cfg.Scoreboard.Mode)
	assert.Equal(t, "107684", cfg.Scoreboard.MeetID)
	assert.Equal(t, "/tmp/api_cache", cfg.Scoreboard.CacheDir)
	assert.Equal(t, 15*time.Second, cfg.Scoreboard.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_USERNAME":  "coach@club.org",
		"EXPORT_MEET_ID": "107684",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "coach@club.org", cfg.Auth.Username)
	assert.Equal(t, "107684", cfg.Export.MeetID)
	assert.Empty(t, cfg.API.BaseURL)
	assert.Zero(t, cfg.Poll.MaxAttempts)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"POLL_INTERVAL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
