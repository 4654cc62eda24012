package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openswim/swimtopia-export/internal/adapter"
	"github.com/openswim/swimtopia-export/internal/config"
	"github.com/openswim/swimtopia-export/internal/logger"
	"github.com/openswim/swimtopia-export/internal/service"
	"github.com/openswim/swimtopia-export/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("export")
	cfg, err := config.GetExportConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	swimtopia, err := adapter.NewHTTPSwimtopiaAdapter(cfg.API, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	exporter := service.NewExporter(swimtopia, log.GetChildLogger())

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	creds := models.Credentials{
		Username: cfg.Auth.Username,
		Password: cfg.Auth.Password,
	}

	if cfg.Export.ListOnly {
		listExportTasks(ctx, exporter, creds, cfg.Export.MeetID, log)
		return
	}

	runExport(ctx, exporter, creds, cfg, log)
}

func runExport(ctx context.Context, exporter service.Exporter, creds models.Credentials, cfg *config.ExportConfig, log *logger.Logger) {
	req := models.ExportRequest{
		MeetID:        cfg.Export.MeetID,
		ExportType:    cfg.Export.ExportType,
		ExportFormat:  cfg.Export.ExportFormat,
		TeamFilter:    cfg.Export.TeamFilter,
		SessionFilter: cfg.Export.SessionFilter,
	}
	policy := service.PollPolicy{
		Interval:    cfg.Poll.Interval,
		MaxAttempts: cfg.Poll.MaxAttempts,
	}

	if cfg.Export.NoDownload {
		if _, err := exporter.Authenticate(ctx, creds); err != nil {
			log.Fatal().Err(err).Msg("authentication failed")
		}
		taskID, err := exporter.CreateExportTask(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Msg("create export task")
		}
		task, err := exporter.PollUntilComplete(ctx, req.MeetID, taskID, policy)
		if err != nil {
			exitOnExportError(err, log)
		}
		fmt.Printf("Export complete: %s\n", task.ExportFilename)
		fmt.Printf("Download URL: %s\n", task.ExportHref)
		return
	}

	artifact, err := exporter.RunExport(ctx, creds, req, policy, cfg.Export.OutputDir)
	if err != nil {
		exitOnExportError(err, log)
	}

	fmt.Printf("Export saved to %s (%d bytes)\n", artifact.LocalPath, artifact.SizeBytes)
}

func listExportTasks(ctx context.Context, exporter service.Exporter, creds models.Credentials, meetID string, log *logger.Logger) {
	if _, err := exporter.Authenticate(ctx, creds); err != nil {
		log.Fatal().Err(err).Msg("authentication failed")
	}

	tasks, err := exporter.ListExportTasks(ctx, meetID)
	if err != nil {
		log.Fatal().Err(err).Msg("list export tasks")
	}

	if len(tasks) == 0 {
		fmt.Printf("No export tasks found for meet %s\n", meetID)
		return
	}

	fmt.Printf("Export tasks for meet %s:\n", meetID)
	for _, task := range tasks {
		line := fmt.Sprintf("  %s  %-10s", task.TaskID, task.State)
		if task.CreatedAt != "" {
			line += "  " + task.CreatedAt
		}
		if task.ExportFilename != "" {
			line += "  " + task.ExportFilename
		}
		fmt.Println(line)
	}
}

// exitOnExportError reports the workflow failure and exits, with a separate
// exit code for operator interruption.
func exitOnExportError(err error, log *logger.Logger) {
	if errors.Is(err, service.ErrCancelled) {
		log.Warn().Err(err).Msg("export interrupted")
		os.Exit(130)
	}
	log.Fatal().Err(err).Msg("export failed")
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
