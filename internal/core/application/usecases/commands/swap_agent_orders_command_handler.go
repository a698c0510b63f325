package commands

import (
	"context"
	"errors"

	"ironweb/internal/core/domain/model/agentday"
	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/ports"
	"ironweb/internal/pkg/errs"
)

// SwapAgentOrdersCommandHandler rotates selected orders in an agent's queue
// for the current day. The sequence row is created lazily: the first
// reordering for a given day materializes it from the agent's orders in
// creation order.
type SwapAgentOrdersCommandHandler struct {
	uowFactory SequenceUoWFactory
	clock      ports.Clock
}

// NewSwapAgentOrdersCommandHandler creates a handler for swap commands.
func NewSwapAgentOrdersCommandHandler(
	uowFactory SequenceUoWFactory,
	clock ports.Clock,
) SwapAgentOrdersCommandHandler {
	return SwapAgentOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle rotates the selected orders within the agent's queue for today.
// Fails when the sequence is locked or the selection has fewer than two
// resolvable positions.
func (h *SwapAgentOrdersCommandHandler) Handle(ctx context.Context, cmd SwapAgentOrdersCommand) error {
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

	if err = sequence.Swap(cmd.Selection()); err != nil {
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

// loadOrCreateSequence returns the agent's sequence for the given day,
// building it from the agent's orders when no row exists yet. The second
// return value reports whether the sequence is new and must be inserted
// rather than updated.
func loadOrCreateSequence(
	ctx context.Context,
	uow SequenceUoW,
	agentID kernel.UUID,
	today kernel.DayDate,
) (*agentday.Sequence, bool, error) {
	sequence, err := uow.SequenceRepository().GetByAgentAndDate(ctx, agentID, today)
	if err == nil {
		return sequence, false, nil
	}

	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return nil, false, err
	}

	orders, err := uow.OrderRepository().GetByAgentAndDate(ctx, agentID, today)
	if err != nil {
		return nil, false, err
	}

	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID())
	}

	sequence, err = agentday.NewSequence(agentID, today, orderIDs)
	if err != nil {
		return nil, false, err
	}

	return sequence, true, nil
}
