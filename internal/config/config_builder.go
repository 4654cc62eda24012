package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults, applied as the lowest-precedence layer.
const (
	DefaultBaseURL        = "https://api.swimtopia.org"
	DefaultRequestTimeout = 30 * time.Second
	DefaultExportType     = "result"
	DefaultExportFormat   = "hy3"
	DefaultOutputDir      = "./exports"
	DefaultPollInterval   = 2 * time.Second
	DefaultMaxAttempts    = 30
	DefaultAddress        = "localhost:8080"
	DefaultMode           = "cache"
	DefaultCacheDir       = "api_cache"
	DefaultRefresh        = 30 * time.Second
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the last (lowest-precedence)
// layer. Zero values left by every earlier layer fall through to these.
func (b *configBuilder) withDefaults() *configBuilder {
	defaults := &StructuredConfig{
		API: APISettings{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Export: ExportSettings{
			ExportType:    DefaultExportType,
			ExportFormat:  DefaultExportFormat,
			TeamFilter:    -1,
			SessionFilter: -1,
			OutputDir:     DefaultOutputDir,
		},
		Poll: PollSettings{
			Interval:    DefaultPollInterval,
			MaxAttempts: DefaultMaxAttempts,
		},
		Scoreboard: ScoreboardSettings{
			Address:         DefaultAddress,
			Mode:            DefaultMode,
			CacheDir:        DefaultCacheDir,
			RefreshInterval: DefaultRefresh,
		},
	}

	b.configs = append(b.configs, defaults)
	return b
}
