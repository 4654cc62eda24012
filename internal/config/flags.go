package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags for both binaries.
//
// Flags:
//
//	-c/-config json config file path
//	-base-url API origin
//	-insecure skip TLS certificate verification
//	-request-timeout API round-trip timeout (e.g., "30s")
//	-m/-meet-id meet to export or display
//	-t/-type export type (result, advancers, merge-entries, merge-results)
//	-o/-output download output directory
//	-list-only list prior export tasks and exit
//	-no-download create the export but skip the download
//	-poll-interval sleep between status polls (e.g., "2s")
//	-max-poll-attempts polling budget before timing out
//	-a scoreboard listen address host:port
//	-mode scoreboard data source (live or cache)
//	-cache-dir snapshot directory
//	-refresh scoreboard refresh interval (e.g., "30s")
//	-snapshot capture API responses to the cache dir and exit
func ParseFlags() *StructuredConfig {
	var (
		jsonConfigPath string
		baseURL        string
		insecure       bool
		requestTimeout time.Duration

		meetID        string
		exportType    string
		outputDir     string
		teamFilter    int
		sessionFilter int
		listOnly      bool
		noDownload    bool

		pollInterval time.Duration
		maxAttempts  int

		address  string
		mode     string
		cacheDir string
		refresh  time.Duration
		snapshot bool
	)

	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&baseURL, "base-url", "", "Swimtopia API origin")
	flag.BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s)")

	flag.StringVar(&meetID, "m", "", "Meet ID")
	flag.StringVar(&meetID, "meet-id", "", "Meet ID (alias)")
	flag.StringVar(&exportType, "t", "", "Export type (result, advancers, merge-entries, merge-results)")
	flag.StringVar(&exportType, "type", "", "Export type (alias)")
	flag.StringVar(&outputDir, "o", "", "Output directory for downloaded archives")
	flag.StringVar(&outputDir, "output", "", "Output directory (alias)")
	flag.IntVar(&teamFilter, "team", 0, "Team ID filter (-1 for all teams)")
	flag.IntVar(&sessionFilter, "session", 0, "Session ID filter (-1 for all sessions)")
	flag.BoolVar(&listOnly, "list-only", false, "Only list existing export tasks")
	flag.BoolVar(&noDownload, "no-download", false, "Create export but skip download")

	flag.DurationVar(&pollInterval, "poll-interval", 0, "Sleep between status polls (e.g., 2s)")
	flag.IntVar(&maxAttempts, "max-poll-attempts", 0, "Maximum polling attempts")

	flag.StringVar(&address, "a", "", "Scoreboard listen address host:port")
	flag.StringVar(&mode, "mode", "", "Scoreboard data source: live or cache")
	flag.StringVar(&cacheDir, "cache-dir", "", "API snapshot directory")
	flag.DurationVar(&refresh, "refresh", 0, "Scoreboard refresh interval (e.g., 30s)")
	flag.BoolVar(&snapshot, "snapshot", false, "Capture API responses to the cache dir and exit")

	flag.Parse()

	return &StructuredConfig{
		API: APISettings{
			BaseURL:            baseURL,
			InsecureSkipVerify: insecure,
			RequestTimeout:     requestTimeout,
		},
		Export: ExportSettings{
			MeetID:        meetID,
			ExportType:    exportType,
			TeamFilter:    teamFilter,
			SessionFilter: sessionFilter,
			OutputDir:     outputDir,
			ListOnly:      listOnly,
			NoDownload:    noDownload,
		},
		Poll: PollSettings{
			Interval:    pollInterval,
			MaxAttempts: maxAttempts,
		},
		Scoreboard: ScoreboardSettings{
			Address:         address,
			Mode:            mode,
			MeetID:          meetID,
			CacheDir:        cacheDir,
			RefreshInterval: refresh,
			Snapshot:        snapshot,
		},
		JSONFilePath: jsonConfigPath,
	}
}
