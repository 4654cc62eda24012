package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openswim/swimtopia-export/internal/adapter"
	"github.com/openswim/swimtopia-export/internal/logger"
	"github.com/openswim/swimtopia-export/internal/mock"
	"github.com/openswim/swimtopia-export/models"
)

func newTestExporter(t *testing.T) (Exporter, *mock.MockSwimtopiaAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSwimtopiaAdapter(ctrl)
	return NewExporter(mockAdapter, logger.Nop()), mockAdapter
}

func taskInState(state models.TaskState) models.ExportTask {
	return models.ExportTask{TaskID: "t1", MeetID: "107684", State: state}
}

// ── evaluatePoll ─────────────────────────────────────────────────────────────

func TestEvaluatePoll(t *testing.T) {
	tests := []struct {
		name    string
		attempt int
		max     int
		task    models.ExportTask
		err     error
		want    pollAction
	}{
		{name: "completed stops immediately", attempt: 1, max: 30, task: taskInState(models.TaskCompleted), want: pollSucceed},
		{name: "completed on the final attempt still succeeds", attempt: 30, max: 30, task: taskInState(models.TaskCompleted), want: pollSucceed},
		{name: "failed stops immediately", attempt: 2, max: 30, task: taskInState(models.TaskFailed), want: pollFailTerminal},
		{name: "failed on the final attempt beats the budget", attempt: 30, max: 30, task: taskInState(models.TaskFailed), want: pollFailTerminal},
		{name: "pending within budget continues", attempt: 5, max: 30, task: taskInState(models.TaskPending), want: pollContinue},
		{name: "processing within budget continues", attempt: 5, max: 30, task: taskInState(models.TaskProcessing), want: pollContinue},
		{name: "unknown state is non-terminal", attempt: 5, max: 30, task: taskInState(models.TaskUnknown), want: pollContinue},
		{name: "pending at budget exhausts", attempt: 30, max: 30, task: taskInState(models.TaskPending), want: pollExhausted},
		{name: "transient error within budget continues", attempt: 5, max: 30, err: fmt.Errorf("boom"), want: pollContinue},
		{name: "transient error at budget exhausts", attempt: 30, max: 30, err: fmt.Errorf("boom"), want: pollExhausted},
		{name: "unauthorized is terminal regardless of budget", attempt: 1, max: 30, err: fmt.Errorf("%w: token expired", adapter.ErrUnauthorized), want: pollFailAuth},
		{name: "unauthorized on the final attempt is still auth", attempt: 30, max: 30, err: fmt.Errorf("%w: token expired", adapter.ErrUnauthorized), want: pollFailAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluatePoll(tt.attempt, tt.max, tt.task, tt.err))
		})
	}
}

// ── PollUntilComplete ────────────────────────────────────────────────────────

func TestPollUntilComplete_CompletesAfterProgress(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(taskInState(models.TaskPending), nil),
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(taskInState(models.TaskProcessing), nil),
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(models.ExportTask{
			TaskID:     "t1",
			MeetID:     "107684",
			State:      models.TaskCompleted,
			ExportHref: "https://files.example.org/signed/export.zip",
		}, nil),
	)

	task, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Millisecond, MaxAttempts: 30})

	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.State)
	assert.Equal(t, "https://files.example.org/signed/export.zip", task.ExportHref)
}

func TestPollUntilComplete_NotModifiedCountsAsNoChange(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(taskInState(models.TaskProcessing), nil),
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(models.ExportTask{}, adapter.ErrNotModified),
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(taskInState(models.TaskCompleted), nil),
	)

	task, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Millisecond, MaxAttempts: 30})

	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.State)
}

func TestPollUntilComplete_FailedStopsWithoutFurtherPolls(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx := context.Background()

	failed := taskInState(models.TaskFailed)
	failed.ErrorMessage = "no results to export"

	gomock.InOrder(
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(taskInState(models.TaskPending), nil),
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").Return(failed, nil),
	)

	_, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Millisecond, MaxAttempts: 30})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTaskFailed)
	assert.Contains(t, err.Error(), "no results to export")
}

func TestPollUntilComplete_TimeoutMakesExactlyMaxAttempts(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		GetExportTask(ctx, "107684", "t1").
		Return(taskInState(models.TaskProcessing), nil).
		Times(3)

	_, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Millisecond, MaxAttempts: 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Contains(t, err.Error(), "3 attempts")
	assert.Contains(t, err.Error(), "processing")
}

func TestPollUntilComplete_TransientErrorsAreRetried(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").
			Return(models.ExportTask{}, fmt.Errorf("%w: connection reset", adapter.ErrTransport)),
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").
			Return(models.ExportTask{}, fmt.Errorf("%w: upstream hiccup", adapter.ErrBadGateway)),
		mockAdapter.EXPECT().GetExportTask(ctx, "107684", "t1").
			Return(taskInState(models.TaskCompleted), nil),
	)

	task, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Millisecond, MaxAttempts: 30})

	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.State)
}

func TestPollUntilComplete_ExpiredTokenStopsImmediately(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx := context.Background()

	// Exactly one call: a rejected token is not retried.
	mockAdapter.EXPECT().
		GetExportTask(ctx, "107684", "t1").
		Return(models.ExportTask{}, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))

	_, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Millisecond, MaxAttempts: 30})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	assert.NotErrorIs(t, err, ErrPollTimeout)
	assert.Contains(t, err.Error(), "token expired")
}

func TestPollUntilComplete_AllAttemptsFailingReportsLastError(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		GetExportTask(ctx, "107684", "t1").
		Return(models.ExportTask{}, fmt.Errorf("%w: connection reset", adapter.ErrTransport)).
		Times(2)

	_, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Millisecond, MaxAttempts: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPollUntilComplete_CancellationBetweenAttempts(t *testing.T) {
	exporter, mockAdapter := newTestExporter(t)
	ctx, cancel := context.WithCancel(context.Background())

	mockAdapter.EXPECT().
		GetExportTask(gomock.Any(), "107684", "t1").
		DoAndReturn(func(context.Context, string, string) (models.ExportTask, error) {
			cancel()
			return taskInState(models.TaskProcessing), nil
		})

	// The interval is far longer than the test: reaching ErrCancelled proves
	// the loop saw ctx.Done between attempts instead of sleeping.
	_, err := exporter.PollUntilComplete(ctx, "107684", "t1", PollPolicy{Interval: time.Hour, MaxAttempts: 30})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Contains(t, err.Error(), "processing")
}
