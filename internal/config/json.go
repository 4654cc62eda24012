package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the layout of the JSON config file, which
// follows the original config.json shape: an "api" block with base_url,
// verify_ssl and the polling policy, an "auth" block with the credentials,
// and an "export" block with the workflow parameters.
type StructuredJSONConfig struct {
	API struct {
		BaseURL             string   `json:"base_url"`
		VerifySSL           *bool    `json:"verify_ssl"`
		RequestTimeout      Duration `json:"request_timeout"`
		PollIntervalSeconds float64  `json:"poll_interval_seconds"`
		MaxPollAttempts     int      `json:"max_poll_attempts"`
	} `json:"api"`

	Auth struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"auth"`

	Export struct {
		MeetID          string `json:"meet_id"`
		ExportType      string `json:"export_type"`
		ExportFormat    string `json:"export_format"`
		TeamFilter      int    `json:"team_filter"`
		SessionFilter   int    `json:"session_filter"`
		OutputDirectory string `json:"output_directory"`
	} `json:"export"`

	Scoreboard struct {
		Address         string   `json:"address"`
		Mode            string   `json:"mode"`
		MeetID          string   `json:"meet_id"`
		CacheDir        string   `json:"cache_dir"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"scoreboard"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	insecure := false
	if jsonCfg.API.VerifySSL != nil && !*jsonCfg.API.VerifySSL {
		insecure = true
	}

	cfg := &StructuredConfig{
		API: APISettings{
			BaseURL:            jsonCfg.API.BaseURL,
			InsecureSkipVerify: insecure,
			RequestTimeout:     time.Duration(jsonCfg.API.RequestTimeout),
		},
		Auth: AuthSettings{
			Username: jsonCfg.Auth.Username,
			Password: jsonCfg.Auth.Password,
		},
		Export: ExportSettings{
			MeetID:        jsonCfg.Export.MeetID,
			ExportType:    jsonCfg.Export.ExportType,
			ExportFormat:  jsonCfg.Export.ExportFormat,
			TeamFilter:    jsonCfg.Export.TeamFilter,
			SessionFilter: jsonCfg.Export.SessionFilter,
			OutputDir:     jsonCfg.Export.OutputDirectory,
		},
		Poll: PollSettings{
			Interval:    time.Duration(jsonCfg.API.PollIntervalSeconds * float64(time.Second)),
			MaxAttempts: jsonCfg.API.MaxPollAttempts,
		},
		Scoreboard: ScoreboardSettings{
			Address:         jsonCfg.Scoreboard.Address,
			Mode:            jsonCfg.Scoreboard.Mode,
			MeetID:          jsonCfg.Scoreboard.MeetID,
			CacheDir:        jsonCfg.Scoreboard.CacheDir,
			RefreshInterval: time.Duration(jsonCfg.Scoreboard.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
