package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob evicts abandoned order sessions. A conversation that
// stops mid-order never completes or deletes its session, so the store grows
// without a sweep.
type SessionCleanupJob struct {
	sessions ports.SessionStore
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a cleanup job that evicts sessions idle for
// longer than ttl.
func NewSessionCleanupJob(sessions ports.SessionStore, ttl time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the cleanup job to run once a minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		removed := j.sessions.DeleteIdleBefore(time.Now().Add(-j.ttl))
		if removed > 0 {
			j.logger.InfoContext(ctx, "Evicted idle order sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
