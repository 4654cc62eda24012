// Package adapter provides the transport layer for communicating with the
// Swimtopia REST API.
//
// The primary abstraction is [SwimtopiaAdapter], which decouples the export
// and scoreboard services from HTTP details: serialisation of JSON:API
// documents, bearer-token management, and mapping of transport-level failures
// to the sentinel errors defined in errors.go so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotModified] for 304).
//
// The OAuth token endpoint is the one call that is not JSON:API: it takes a
// form-encoded password grant. The signed export download carries no bearer
// token at all; the URL itself is pre-authorized and time-limited.
package adapter

import (
	"context"
	"io"

	"github.com/openswim/swimtopia-export/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/swimtopia_adapter_mock.go -package=mock

// SwimtopiaAdapter defines transport-agnostic communication with the
// Swimtopia API. Implementations own the bearer token for the process
// lifetime; there is no refresh flow.
type SwimtopiaAdapter interface {
	// Authenticate exchanges the credentials for a bearer token via the
	// OAuth password grant. On success the token is stored via SetToken and
	// attached to all subsequent authenticated requests. Returns an error if
	// the request fails, the server responds with a non-2xx status, or the
	// response carries no access token.
	Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error)

	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// ListMeets fetches meet summaries, optionally filtered by account.
	// Pass an empty accountID for no filter.
	ListMeets(ctx context.Context, accountID string) ([]models.Meet, error)

	// GetMeet fetches a single meet resource as a raw JSON:API document.
	GetMeet(ctx context.Context, meetID string) (models.SingleDocument, error)

	// CreateExportTask submits a new export task keyed by the
	// client-generated req.TaskID. The server accepts, rather than assigns,
	// the identifier and begins asynchronous processing. Returns the task
	// resource echoed by the server.
	CreateExportTask(ctx context.Context, req models.ExportRequest) (models.ExportTask, error)

	// GetExportTask fetches the current state of one export task. A 304
	// response (no change since the last poll) is returned as
	// [ErrNotModified], which the poller treats as non-terminal.
	GetExportTask(ctx context.Context, meetID, taskID string) (models.ExportTask, error)

	// ListExportTasks fetches all prior export tasks for a meet.
	ListExportTasks(ctx context.Context, meetID string) ([]models.ExportTask, error)

	// ListAthletes fetches a meet's athletes as a raw JSON:API document.
	// The scoreboard builder owns decoding.
	ListAthletes(ctx context.Context, meetID string) (models.CollectionDocument, error)

	// ListEventNodes fetches a meet's event nodes as a raw JSON:API
	// document.
	ListEventNodes(ctx context.Context, meetID string) (models.CollectionDocument, error)

	// GetEvent fetches one event with its compound included resources
	// (heats, event records, relay positions, splits).
	GetEvent(ctx context.Context, meetID, eventID string) (models.SingleDocument, error)

	// DownloadExport GETs a signed export URL and returns the response body
	// stream together with the filename suggested by the server's
	// Content-Disposition header (empty when absent). No bearer token is
	// attached. The caller must close the returned reader.
	DownloadExport(ctx context.Context, href string) (io.ReadCloser, string, error)
}
