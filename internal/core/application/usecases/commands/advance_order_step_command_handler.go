package commands

import (
	"context"
	"errors"
	"fmt"

	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/ports"
)

// ErrStepMismatch is returned when the step named in the command is not the
// order's next pending step, which happens when the same transition is
// submitted twice or the order advanced elsewhere in the meantime.
var ErrStepMismatch = errors.New("named step is not the next pending step")

// scanGate adapts the command's per-interaction verification outcome to the
// domain's VerificationGate capability.
type scanGate bool

func (g scanGate) IsSatisfied() bool {
	return bool(g)
}

// AdvanceOrderStepCommandHandler drives an order through its fulfillment flow.
// The transition is atomic: the step is marked completed and persisted in one
// transaction, or not at all. A failed verification gate rejects the command
// before any state is touched, so the agent can retry after scanning.
type AdvanceOrderStepCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewAdvanceOrderStepCommandHandler creates a handler for flow advancement.
func NewAdvanceOrderStepCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AdvanceOrderStepCommandHandler {
	return AdvanceOrderStepCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the advancement command.
//
// Returns order.ErrFlowAlreadyTerminal when nothing is pending,
// ErrStepMismatch when the named step is not the next one, and
// order.ErrVerificationRequired when the terminal step of an online-payment
// order is advanced without a satisfied verification.
func (h *AdvanceOrderStepCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStepCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	next, ok := aggregate.NextStep()
	if !ok {
		return order.ErrFlowAlreadyTerminal
	}
	if next.Name() != cmd.StepName() {
		return fmt.Errorf("%w: expected %q, got %q", ErrStepMismatch, next.Name(), cmd.StepName())
	}

	if _, err = aggregate.AdvanceStep(h.clock.Now(), scanGate(cmd.IsVerified())); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
