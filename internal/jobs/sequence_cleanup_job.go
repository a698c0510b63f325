package jobs

import (
	"context"
	"log/slog"

	"ironweb/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SequenceCleanupJob removes stored agent queues from past days.
// Runs shortly after midnight so every agent starts the new day with a
// fresh, unlocked queue in creation order.
type SequenceCleanupJob struct {
	handler commands.PurgeExpiredSequencesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSequenceCleanupJob creates a new job for purging expired sequences.
func NewSequenceCleanupJob(
	handler commands.PurgeExpiredSequencesCommandHandler,
	logger *slog.Logger,
) *SequenceCleanupJob {
	return &SequenceCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "sequence_cleanup_job"),
	}
}

// Start schedules the cleanup to run daily at 00:05.
// The offset past midnight avoids racing agents who are still finishing a
// late shift exactly at the day boundary.
func (j *SequenceCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 5 0 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeExpiredSequencesCommand()

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Sequence cleanup job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Expired agent sequences purged", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sequence cleanup job started (running daily at 00:05)")
	return nil
}

// Stop stops the sequence cleanup job.
func (j *SequenceCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sequence cleanup job stopped")
}
