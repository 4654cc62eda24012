package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openswim/swimtopia-export/internal/adapter"
	"github.com/openswim/swimtopia-export/models"
)

// pollAction is the outcome of evaluating one status poll.
type pollAction int

const (
	// pollContinue: non-terminal state or transient failure, budget not
	// yet exhausted; sleep and poll again.
	pollContinue pollAction = iota
	// pollSucceed: the task reached completed; stop immediately.
	pollSucceed
	// pollFailTerminal: the server reported failed; stop immediately.
	pollFailTerminal
	// pollExhausted: the attempt budget ran out without a terminal state.
	pollExhausted
	// pollFailAuth: the token stopped being accepted; stop immediately.
	pollFailAuth
)

// evaluatePoll is the polling state-transition function: given the attempt
// just made, the observed task (when err is nil), and the error otherwise, it
// decides the next step. Terminal states win over the budget. HTTP-level
// failures are transient because task creation has already succeeded
// server-side — except a 401, which means the token is no longer accepted and
// no amount of retrying will change that.
func evaluatePoll(attempt, maxAttempts int, task models.ExportTask, err error) pollAction {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return pollFailAuth
	}

	if err == nil {
		switch task.State {
		case models.TaskCompleted:
			return pollSucceed
		case models.TaskFailed:
			return pollFailTerminal
		}
	}

	if attempt >= maxAttempts {
		return pollExhausted
	}
	return pollContinue
}

// PollUntilComplete implements [Exporter]. Each attempt GETs the task
// resource; a 304 answer counts as "no change" and keeps the last observed
// state. Cancellation is observed between attempts only: the request in
// flight is allowed to finish, then the loop stops with ErrCancelled.
func (s *exportService) PollUntilComplete(ctx context.Context, meetID, taskID string, policy PollPolicy) (models.ExportTask, error) {
	lastState := models.TaskUnknown
	var lastErr error

	for attempt := 1; ; attempt++ {
		task, err := s.adapter.GetExportTask(ctx, meetID, taskID)
		if errors.Is(err, adapter.ErrNotModified) {
			// still in progress, state unchanged since the last poll
			task = models.ExportTask{TaskID: taskID, MeetID: meetID, State: lastState}
			err = nil
		}

		if err != nil {
			lastErr = err
			s.logger.Warn().Err(err).Int("attempt", attempt).Msg("status poll failed")
		} else {
			lastState = task.State
			lastErr = nil
			s.logger.Debug().
				Int("attempt", attempt).
				Str("state", string(task.State)).
				Msg("status poll")
		}

		switch evaluatePoll(attempt, policy.MaxAttempts, task, err) {
		case pollSucceed:
			return task, nil
		case pollFailAuth:
			return models.ExportTask{}, fmt.Errorf("%w: %v", ErrAuth, err)
		case pollFailTerminal:
			if task.ErrorMessage != "" {
				return models.ExportTask{}, fmt.Errorf("%w: %s", ErrTaskFailed, task.ErrorMessage)
			}
			return models.ExportTask{}, fmt.Errorf("%w: task %s", ErrTaskFailed, taskID)
		case pollExhausted:
			if lastErr != nil {
				return models.ExportTask{}, fmt.Errorf("%w after %d attempts (last state %q): %v",
					ErrPollTimeout, policy.MaxAttempts, lastState, lastErr)
			}
			return models.ExportTask{}, fmt.Errorf("%w after %d attempts (last state %q)",
				ErrPollTimeout, policy.MaxAttempts, lastState)
		}

		select {
		case <-ctx.Done():
			return models.ExportTask{}, fmt.Errorf("%w (last state %q): %v", ErrCancelled, lastState, ctx.Err())
		case <-time.After(policy.Interval):
		}
	}
}
