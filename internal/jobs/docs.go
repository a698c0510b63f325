// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. SequenceCleanupJob - Runs daily shortly after midnight to purge agent
// queue orderings and locks left over from previous days
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeSequencesHandler, logger)
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
// The cleanup job uses the cron expression "0 5 0 * * *": daily at 00:05.
// Expiry is also enforced on read, so the sweep is hygiene rather than
// correctness; a missed run never lets a stale ordering shape a new day.
//
// # Error Handling
//
// - Cleanup job logs failures and retries on the next scheduled run
// - Failed job starts will stop any already running jobs
package jobs
