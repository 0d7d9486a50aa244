package scheduler

import (
	"context"
	"time"

	"github.com/CourageAllien/revshare/internal/logger"
)

// Runner drives Reminders on a fixed period for deployments without an
// external cron. A zero interval disables the ticker entirely; the cron
// endpoint still works either way.
type Runner struct {
	reminders *Reminders
	logger    logger.Logger
	interval  time.Duration
	stopCh    chan struct{}
}

// NewRunner creates a periodic reminder runner.
func NewRunner(reminders *Reminders, log logger.Logger, interval time.Duration) *Runner {
	return &Runner{
		reminders: reminders,
		logger:    log,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins periodic reminder runs. Returns immediately; runs happen on
// a background goroutine until Stop or ctx cancellation.
func (r *Runner) Start(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.Info("reminder ticker disabled, relying on external cron")
		return nil
	}

	// Run immediately on start
	if _, err := r.reminders.Run(ctx, time.Now()); err != nil {
		r.logger.Warn("initial reminder run failed", logger.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := r.reminders.Run(ctx, time.Now()); err != nil {
					r.logger.Error("reminder run failed", logger.Error(err))
				}
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the runner.
func (r *Runner) Stop() {
	close(r.stopCh)
}
