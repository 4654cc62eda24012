package service

import "errors"

// The export workflow error taxonomy. Every stage fails fast with a distinct
// kind, and the orchestrator surfaces it unchanged, so callers can tell
// "never started" (ErrAuth, ErrCreation) from "started but failed remotely"
// (ErrTaskFailed) from "started but never finished" (ErrPollTimeout) from
// "finished but undownloadable" (ErrDownload).
var (
	// ErrAuth covers bad credentials, an unreachable token endpoint, and
	// any authorization failure after token acquisition (tokens are never
	// silently refreshed).
	ErrAuth = errors.New("authentication failed")

	// ErrCreation means the export task submission was rejected; polling
	// never starts.
	ErrCreation = errors.New("export task creation failed")

	// ErrTaskFailed means the server reported the task in the failed
	// state; polling stops immediately.
	ErrTaskFailed = errors.New("export task failed")

	// ErrPollTimeout means the attempt budget was exhausted without the
	// task reaching a terminal state.
	ErrPollTimeout = errors.New("export task polling timed out")

	// ErrDownload covers an expired signed link and local disk failures.
	ErrDownload = errors.New("export download failed")

	// ErrNetwork marks a transient transport failure. It is retried only
	// within the polling stage; everywhere else it is surfaced.
	ErrNetwork = errors.New("network error")

	// ErrCancelled is returned when the caller's cancellation signal is
	// observed between poll attempts; no download is attempted.
	ErrCancelled = errors.New("export cancelled")
)
