package commands

import (
	"context"
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/ports"
	"ironweb/internal/pkg/errs"
)

// UnlockAgentSequenceCommandHandler discards an agent's stored queue for the
// current day. Dropping the row removes both the custom ordering and the
// lock, so the next queue view falls back to creation order.
type UnlockAgentSequenceCommandHandler struct {
	uowFactory SequenceUoWFactory
	clock      ports.Clock
}

// NewUnlockAgentSequenceCommandHandler creates a handler for unlock commands.
func NewUnlockAgentSequenceCommandHandler(
	uowFactory SequenceUoWFactory,
	clock ports.Clock,
) UnlockAgentSequenceCommandHandler {
	return UnlockAgentSequenceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle unlocks the agent's queue for today. Succeeds even when no stored
// queue exists, so repeated unlocks are harmless.
func (h *UnlockAgentSequenceCommandHandler) Handle(ctx context.Context, cmd UnlockAgentSequenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	today := kernel.NewDayDate(h.clock.Now())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := uow.SequenceRepository().Delete(ctx, cmd.AgentID(), today)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return uow.Commit(ctx)
}
