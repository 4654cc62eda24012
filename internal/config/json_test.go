package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"api": {
			"base_url": "https://api.swimtopia.org",
			"verify_ssl": true,
			"poll_interval_seconds": 2.5,
			"max_poll_attempts": 45
		},
		"auth": {
			"username": "coach@club.org",
			"password": "secret"
		},
		"export": {
			"meet_id": "107684",
			"export_type": "result",
			"export_format": "hy3",
			"team_filter": -1,
			"session_filter": -1,
			"output_directory": "./exports"
		},
		"scoreboard": {
			"address": "0.0.0.0:5000",
			"mode": "cache",
			"cache_dir": "api_cache",
			"refresh_interval": "20s"
		}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "https://api.swimtopia.org", cfg.API.BaseURL)
	assert.False(t, cfg.API.InsecureSkipVerify)
	assert.Equal(t, 2500*time.Millisecond, cfg.Poll.Interval)
	assert.Equal(t, 45, cfg.Poll.MaxAttempts)
	assert.Equal(t, "coach@club.org", cfg.Auth.Username)
	assert.Equal(t, "secret", cfg.Auth.Password)
	assert.Equal(t, "107684", cfg.Export.MeetID)
	assert.Equal(t, -1, cfg.Export.TeamFilter)
	assert.Equal(t, "./exports", cfg.Export.OutputDir)
	assert.Equal(t, "0.0.0.0:5000", cfg.Scoreboard.Address)
	assert.Equal(t, 20*time.Second, cfg.Scoreboard.RefreshInterval)
}

func TestParseJSON_VerifySSLDisabled(t *testing.T) {
	path := writeTempJSONConfig(t, `{"api": {"verify_ssl": false}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.True(t, cfg.API.InsecureSkipVerify)
}

func TestParseJSON_VerifySSLAbsentDefaultsToVerifying(t *testing.T) {
	path := writeTempJSONConfig(t, `{"api": {"base_url": "https://api.swimtopia.org"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.False(t, cfg.API.InsecureSkipVerify)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{"api": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

// ── Duration ─────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", in: `"30s"`, want: 30 * time.Second},
		{name: "compound duration string", in: `"1h30m"`, want: 90 * time.Minute},
		{name: "integer nanoseconds", in: `5000000000`, want: 5 * time.Second},
		{name: "bad string", in: `"soon"`, wantErr: true},
		{name: "bad type", in: `["30s"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}
