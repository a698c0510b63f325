package jobs

import (
	"fmt"
	"log/slog"

	"ironweb/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sequenceCleanupJob *SequenceCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeSequencesHandler commands.PurgeExpiredSequencesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sequenceCleanupJob: NewSequenceCleanupJob(purgeSequencesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sequenceCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start sequence cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sequenceCleanupJob.Stop()
}
