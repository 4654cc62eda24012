package scoreboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/openswim/swimtopia-export/models"
)

// Refresher rebuilds the scoreboard on a ticker and holds the latest good
// build for the HTTP handlers. A failed rebuild keeps the previous board.
type Refresher struct {
	builder *Builder
	logger  zerolog.Logger

	mu      sync.RWMutex
	current models.Scoreboard
	built   bool
	lastErr error

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefresher(builder *Builder, logger zerolog.Logger) *Refresher {
	return &Refresher{
		builder: builder,
		logger:  logger.With().Str("component", "scoreboard-refresher").Logger(),
	}
}

// Refresh rebuilds the scoreboard once and stores the result.
func (r *Refresher) Refresh(ctx context.Context) error {
	board, err := r.builder.Build(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = err
	if err != nil {
		r.logger.Error().Err(err).Msg("scoreboard refresh failed")
		return err
	}
	r.current = board
	r.built = true
	return nil
}

// Current returns the latest successfully built scoreboard. ok is false
// until the first successful build.
func (r *Refresher) Current() (models.Scoreboard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, r.built
}

// LastError returns the error of the most recent refresh attempt, nil if it
// succeeded.
func (r *Refresher) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Start stops any previously running job, refreshes once immediately, then
// launches a background goroutine that refreshes every interval. If interval
// is zero or negative it defaults to 30 seconds. The goroutine exits when
// ctx is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	r.Stop()

	r.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.jobMu.Unlock()

	_ = r.Refresh(jobCtx)

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = r.Refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (r *Refresher) Stop() {
	r.jobMu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}
