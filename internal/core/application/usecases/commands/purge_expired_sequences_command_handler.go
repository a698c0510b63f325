package commands

import (
	"context"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/ports"
)

// PurgeExpiredSequencesCommandHandler deletes stored agent queues from past
// days. Each day starts from a clean slate; yesterday's ordering and lock
// must never shape today's work.
type PurgeExpiredSequencesCommandHandler struct {
	uowFactory SequenceUoWFactory
	clock      ports.Clock
}

// NewPurgeExpiredSequencesCommandHandler creates a handler for the purge sweep.
func NewPurgeExpiredSequencesCommandHandler(
	uowFactory SequenceUoWFactory,
	clock ports.Clock,
) PurgeExpiredSequencesCommandHandler {
	return PurgeExpiredSequencesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle removes every sequence dated before today and returns the count.
func (h *PurgeExpiredSequencesCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeExpiredSequencesCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	today := kernel.NewDayDate(h.clock.Now())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.SequenceRepository().DeleteExpired(ctx, today)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
