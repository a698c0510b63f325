package commands

import (
	"context"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/ports"
)

// LockAgentSequenceCommandHandler freezes an agent's queue for the current
// day. Locking an untouched queue first materializes it, so the frozen
// ordering is exactly what the agent saw.
type LockAgentSequenceCommandHandler struct {
	uowFactory SequenceUoWFactory
	clock      ports.Clock
}

// NewLockAgentSequenceCommandHandler creates a handler for lock commands.
func NewLockAgentSequenceCommandHandler(
	uowFactory SequenceUoWFactory,
	clock ports.Clock,
) LockAgentSequenceCommandHandler {
	return LockAgentSequenceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle locks the agent's queue for today.
// Fails with ErrSequenceLocked when the queue is already frozen.
func (h *LockAgentSequenceCommandHandler) Handle(ctx context.Context, cmd LockAgentSequenceCommand) error {
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

	sequence, created, err := loadOrCreateSequence(ctx, uow, cmd.AgentID(), today)
	if err != nil {
		return err
	}

	if err = sequence.Lock(); err != nil {
		return err
	}

	if created {
		err = uow.SequenceRepository().Add(ctx, sequence)
	} else {
		err = uow.SequenceRepository().Update(ctx, sequence)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
