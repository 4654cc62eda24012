package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/openswim/swimtopia-export/internal/adapter"
	"github.com/openswim/swimtopia-export/internal/apicache"
	"github.com/openswim/swimtopia-export/internal/config"
	"github.com/openswim/swimtopia-export/internal/logger"
	"github.com/openswim/swimtopia-export/internal/scoreboard"
	"github.com/openswim/swimtopia-export/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("scoreboard")
	cfg, err := config.GetScoreboardConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var store *apicache.Store
	if cfg.Scoreboard.CacheDir != "" {
		store = apicache.NewStore(cfg.Scoreboard.CacheDir, log.Logger)
	}

	if cfg.Scoreboard.Snapshot {
		captureSnapshot(ctx, cfg, store, log)
		return
	}

	source := newSource(ctx, cfg, store, log)
	builder := scoreboard.NewBuilder(source, log.Logger)
	refresher := scoreboard.NewRefresher(builder, log.Logger)

	refresher.Start(ctx, cfg.Scoreboard.RefreshInterval)
	defer refresher.Stop()

	handler := scoreboard.NewHandler(refresher, cfg.Scoreboard.Mode, cfg.Scoreboard.RefreshInterval, log.Logger)

	server := &http.Server{
		Addr:    cfg.Scoreboard.Address,
		Handler: handler.Init(),
	}

	go func() {
		log.Info().Str("address", cfg.Scoreboard.Address).Str("mode", cfg.Scoreboard.Mode).Msg("scoreboard server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	log.Info().Msg("server shutdown gracefully")
}

// newSource wires the configured data source: cache mode reads snapshots
// only, live mode authenticates and fetches per refresh, writing snapshots
// through when a cache directory is configured.
func newSource(ctx context.Context, cfg *config.ScoreboardConfig, store *apicache.Store, log *logger.Logger) scoreboard.Source {
	if cfg.Scoreboard.Mode == "cache" {
		if store == nil || !store.Exists() {
			log.Fatal().Str("dir", cfg.Scoreboard.CacheDir).Msg("cache directory missing or empty")
		}
		return scoreboard.NewCacheSource(store)
	}

	api := authenticatedAdapter(ctx, cfg, log)
	return scoreboard.NewLiveSource(api, cfg.Scoreboard.MeetID, store)
}

// captureSnapshot fetches one full round of meet data through a write-through
// live source, leaving a populated cache directory behind.
func captureSnapshot(ctx context.Context, cfg *config.ScoreboardConfig, store *apicache.Store, log *logger.Logger) {
	if store == nil {
		log.Fatal().Msg("snapshot capture requires a cache directory")
	}

	api := authenticatedAdapter(ctx, cfg, log)
	source := scoreboard.NewLiveSource(api, cfg.Scoreboard.MeetID, store)
	builder := scoreboard.NewBuilder(source, log.Logger)

	board, err := builder.Build(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("snapshot capture failed")
	}

	fmt.Printf("Captured %d events for meet %s into %s\n", len(board.Events), cfg.Scoreboard.MeetID, store.Dir())
}

func authenticatedAdapter(ctx context.Context, cfg *config.ScoreboardConfig, log *logger.Logger) adapter.SwimtopiaAdapter {
	api, err := adapter.NewHTTPSwimtopiaAdapter(cfg.API, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	creds := models.Credentials{
		Username: cfg.Auth.Username,
		Password: cfg.Auth.Password,
	}
	if _, err := api.Authenticate(ctx, creds); err != nil {
		log.Fatal().Err(err).Msg("authentication failed")
	}

	return api
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
