package commands

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/pkg/guard"
)

var ErrAdvanceOrderStepCommandIsNotConstructed = errors.New(
	"AdvanceOrderStepCommand must be created via NewAdvanceOrderStepCommand constructor",
)

// AdvanceOrderStepCommand represents an agent's request to mark the next
// fulfillment step of an order as completed.
//
// The command names the step it expects to complete so a stale or duplicate
// submission cannot silently advance a different step. The verified flag is
// the outcome of the delivery verification (QR scan) for this interaction
// only; it is consumed by the handler and never stored.
type AdvanceOrderStepCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	stepName order.StepName
	verified bool

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStepCommand creates a command to advance an order's flow.
// Requires a valid order ID and a valid step name.
func NewAdvanceOrderStepCommand(
	orderID kernel.UUID,
	stepName order.StepName,
	verified bool,
) (AdvanceOrderStepCommand, error) {
	cmd := AdvanceOrderStepCommand{
		verified: verified,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStepName(stepName),
	); err != nil {
		return AdvanceOrderStepCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStepCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStepCommandIsNotConstructed)
}

// OrderID returns the order whose flow is being advanced.
func (c AdvanceOrderStepCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StepName returns the step the agent expects to complete.
func (c AdvanceOrderStepCommand) StepName() order.StepName {
	return c.stepName
}

// IsVerified reports whether delivery verification succeeded in this interaction.
func (c AdvanceOrderStepCommand) IsVerified() bool {
	return c.verified
}

func (c *AdvanceOrderStepCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStepCommand) setStepName(stepName order.StepName) error {
	if err := stepName.Validate(); err != nil {
		return err
	}
	c.stepName = stepName
	return nil
}
