// Package service implements the export workflow on top of the transport
// adapter: authentication, task creation with client-generated identifiers,
// the status-polling state machine, and the artifact download, composed by
// the [Exporter] orchestrator.
package service

import (
	"context"
	"time"

	"github.com/openswim/swimtopia-export/models"
)

// PollPolicy bounds the status-polling loop. Both values come from
// configuration; server-side processing is typically sub-second, so a short
// interval with a bounded attempt count is the governing SLA.
type PollPolicy struct {
	// Interval is the sleep between consecutive status polls.
	Interval time.Duration
	// MaxAttempts is the polling budget; exhausting it without a terminal
	// state yields ErrPollTimeout.
	MaxAttempts int
}

// Exporter runs the end-to-end export workflow and the read-only listing
// operations.
type Exporter interface {
	// Authenticate exchanges the credentials for a session. Fails with
	// ErrAuth on bad credentials or an unreachable token endpoint; no
	// partial session state is retained.
	Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error)

	// CreateExportTask generates the task identifier client-side (when
	// req.TaskID is empty) and submits the export request. Returns the
	// identifier to poll with. Fails with ErrCreation when the server
	// rejects the submission; the caller must not proceed to polling.
	CreateExportTask(ctx context.Context, req models.ExportRequest) (string, error)

	// PollUntilComplete polls the task until it reaches a terminal state,
	// honoring policy. Terminal-completed returns the task immediately;
	// terminal-failed fails with ErrTaskFailed immediately; transient
	// transport failures are retried within the attempt budget; an
	// exhausted budget fails with ErrPollTimeout; cancellation observed
	// between attempts fails with ErrCancelled.
	PollUntilComplete(ctx context.Context, meetID, taskID string, policy PollPolicy) (models.ExportTask, error)

	// Download streams the completed export from its signed URL into
	// outputDir, creating the directory if absent. The filename comes from
	// the response's content-disposition or the URL path, falling back to
	// a deterministic name incorporating taskID.
	Download(ctx context.Context, exportHref, taskID, outputDir string) (models.DownloadedArtifact, error)

	// RunExport sequences authenticate → create → poll → download,
	// short-circuiting on the first failure and surfacing the stage's
	// error kind unchanged.
	RunExport(ctx context.Context, creds models.Credentials, req models.ExportRequest, policy PollPolicy, outputDir string) (models.DownloadedArtifact, error)

	// ListMeets fetches meet summaries, optionally filtered by account.
	ListMeets(ctx context.Context, accountID string) ([]models.Meet, error)

	// ListExportTasks fetches a meet's prior export tasks.
	ListExportTasks(ctx context.Context, meetID string) ([]models.ExportTask, error)
}
