package jobs_test

import (
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/inmemory"
	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/require"
)

func TestSessionCleanupJob_StartAndStop(t *testing.T) {
	store := inmemory.NewSessionStore()
	job := jobs.NewSessionCleanupJob(store, 30*time.Minute, slog.Default())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	store := inmemory.NewSessionStore()
	manager := jobs.NewJobManager(store, 30*time.Minute, slog.Default())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
