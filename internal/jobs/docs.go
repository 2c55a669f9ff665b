// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping around conversation sessions.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to evict order sessions that have
// been idle past their time-to-live
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the session store and TTL
//	jobManager := jobs.NewJobManager(sessionStore, 30*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Eviction is driven by each session's last-activity
// timestamp, so a session mutated between sweeps survives.
package jobs
