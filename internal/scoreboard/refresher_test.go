package scoreboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openswim/swimtopia-export/models"
)

// countingSource counts builds and can be flipped into a failing state.
type countingSource struct {
	fakeSource
	builds atomic.Int64
	fail   atomic.Bool
}

func (s *countingSource) Athletes(ctx context.Context) (map[string]models.Resource, error) {
	s.builds.Add(1)
	if s.fail.Load() {
		return nil, errors.New("source offline")
	}
	return s.fakeSource.Athletes(ctx)
}

func newCountingSource(t *testing.T, meetName string) *countingSource {
	t.Helper()
	return &countingSource{
		fakeSource: fakeSource{
			meet:     models.MeetAttributes{Name: meetName},
			hasMeet:  true,
			athletes: map[string]models.Resource{},
			nodes: []models.Resource{
				eventNode(t, "n1", "e1", models.EventAttributes{EventNumber: "1", Label: "Girls 50 Free"}),
			},
		},
	}
}

func TestRefresher_RefreshStoresBoard(t *testing.T) {
	src := newCountingSource(t, "City Champs")
	r := NewRefresher(newTestBuilder(src), zerolog.Nop())

	_, ok := r.Current()
	assert.False(t, ok)

	require.NoError(t, r.Refresh(context.Background()))

	board, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, "City Champs", board.MeetName)
	assert.NoError(t, r.LastError())
}

func TestRefresher_FailedRefreshKeepsPreviousBoard(t *testing.T) {
	src := newCountingSource(t, "City Champs")
	r := NewRefresher(newTestBuilder(src), zerolog.Nop())

	require.NoError(t, r.Refresh(context.Background()))

	src.fail.Store(true)
	err := r.Refresh(context.Background())
	require.Error(t, err)

	// Viewers keep seeing the last good board while the source is down.
	board, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, "City Champs", board.MeetName)
	assert.Error(t, r.LastError())

	// The next successful refresh clears the error.
	src.fail.Store(false)
	require.NoError(t, r.Refresh(context.Background()))
	assert.NoError(t, r.LastError())
}

func TestRefresher_StartRefreshesImmediatelyThenPeriodically(t *testing.T) {
	src := newCountingSource(t, "City Champs")
	r := NewRefresher(newTestBuilder(src), zerolog.Nop())

	r.Start(context.Background(), 10*time.Millisecond)
	defer r.Stop()

	// The immediate refresh completes before Start returns.
	_, ok := r.Current()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, src.builds.Load(), int64(1))

	assert.Eventually(t, func() bool {
		return src.builds.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestRefresher_StopHaltsTheJob(t *testing.T) {
	src := newCountingSource(t, "City Champs")
	r := NewRefresher(newTestBuilder(src), zerolog.Nop())

	r.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return src.builds.Load() >= 2
	}, time.Second, time.Millisecond)

	r.Stop()
	after := src.builds.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, src.builds.Load())
}

func TestRefresher_StopWithoutStart(t *testing.T) {
	r := NewRefresher(newTestBuilder(newCountingSource(t, "City Champs")), zerolog.Nop())
	assert.NotPanics(t, r.Stop)
}

func TestRefresher_ContextCancellationStopsTheJob(t *testing.T) {
	src := newCountingSource(t, "City Champs")
	r := NewRefresher(newTestBuilder(src), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx, 5*time.Millisecond)

	cancel()
	// Stop still drains the goroutine cleanly after the context is gone.
	r.Stop()

	after := src.builds.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, src.builds.Load())
}

func TestRefresher_StartTwiceReplacesTheJob(t *testing.T) {
	src := newCountingSource(t, "City Champs")
	r := NewRefresher(newTestBuilder(src), zerolog.Nop())

	r.Start(context.Background(), time.Hour)
	r.Start(context.Background(), time.Hour)
	defer r.Stop()

	// Both starts ran their immediate refresh; nothing else ticks.
	assert.Equal(t, int64(2), src.builds.Load())
}
