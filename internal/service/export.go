package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openswim/swimtopia-export/internal/adapter"
	"github.com/openswim/swimtopia-export/internal/logger"
	"github.com/openswim/swimtopia-export/internal/utils"
	"github.com/openswim/swimtopia-export/models"
)

type exportService struct {
	adapter adapter.SwimtopiaAdapter
	taskIDs *utils.TaskIDGenerator
	logger  *logger.Logger
}

// NewExporter constructs the export orchestrator on top of the transport
// adapter.
func NewExporter(swimtopia adapter.SwimtopiaAdapter, log *logger.Logger) Exporter {
	return &exportService{
		adapter: swimtopia,
		taskIDs: utils.NewTaskIDGenerator(),
		logger:  log,
	}
}

// Authenticate implements [Exporter]. Bad credentials and an unreachable
// token endpoint both surface as ErrAuth; nothing of the failed attempt is
// retained.
func (s *exportService) Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error) {
	session, err := s.adapter.Authenticate(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	return session, nil
}

// CreateExportTask implements [Exporter]. The task identifier is generated
// client-side before any network call; the server accepts, rather than
// assigns, it.
func (s *exportService) CreateExportTask(ctx context.Context, req models.ExportRequest) (string, error) {
	if req.TaskID == "" {
		req.TaskID = s.taskIDs.Generate()
	}
	if req.ExportFormat == "" {
		req.ExportFormat = models.ExportFormatHY3
	}

	task, err := s.adapter.CreateExportTask(ctx, req)
	if err != nil {
		return "", s.mapAdapterError(err, ErrCreation)
	}

	s.logger.Info().
		Str("task_id", req.TaskID).
		Str("meet_id", req.MeetID).
		Str("export_type", req.ExportType).
		Str("initial_state", string(task.State)).
		Msg("export task created")

	return req.TaskID, nil
}

// RunExport implements [Exporter]. The stages run strictly in sequence, each
// gated on the success of the previous one, and the first failure's error
// kind passes through unchanged so callers can tell which stage failed.
func (s *exportService) RunExport(ctx context.Context, creds models.Credentials, req models.ExportRequest, policy PollPolicy, outputDir string) (models.DownloadedArtifact, error) {
	if _, err := s.Authenticate(ctx, creds); err != nil {
		return models.DownloadedArtifact{}, err
	}

	taskID, err := s.CreateExportTask(ctx, req)
	if err != nil {
		return models.DownloadedArtifact{}, err
	}

	task, err := s.PollUntilComplete(ctx, req.MeetID, taskID, policy)
	if err != nil {
		return models.DownloadedArtifact{}, err
	}

	if task.ExportHref == "" {
		return models.DownloadedArtifact{}, fmt.Errorf("%w: completed task %s carries no download url", ErrDownload, taskID)
	}

	return s.Download(ctx, task.ExportHref, taskID, outputDir)
}

// ListMeets implements [Exporter]. Listing is a single round trip with plain
// error propagation; only authorization and transport failures are
// reclassified.
func (s *exportService) ListMeets(ctx context.Context, accountID string) ([]models.Meet, error) {
	meets, err := s.adapter.ListMeets(ctx, accountID)
	if err != nil {
		return nil, s.mapListingError("list meets", err)
	}

	return meets, nil
}

// ListExportTasks implements [Exporter].
func (s *exportService) ListExportTasks(ctx context.Context, meetID string) ([]models.ExportTask, error) {
	tasks, err := s.adapter.ListExportTasks(ctx, meetID)
	if err != nil {
		return nil, s.mapListingError("list export tasks", err)
	}

	return tasks, nil
}

func (s *exportService) mapListingError(op string, err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// mapAdapterError translates transport-layer errors into the workflow
// taxonomy. An authorization failure after token acquisition is terminal
// ErrAuth (tokens are never silently refreshed); a request that died before
// any HTTP status is ErrNetwork; everything else belongs to the stage.
func (s *exportService) mapAdapterError(err error, stage error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	default:
		return fmt.Errorf("%w: %v", stage, err)
	}
}
