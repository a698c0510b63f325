package commands

import (
	"errors"
	"fmt"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/guard"
)

var (
	ErrSwapAgentOrdersCommandIsNotConstructed = errors.New(
		"SwapAgentOrdersCommand must be created via NewSwapAgentOrdersCommand constructor",
	)

	// ErrSelectionRequiresTwoOrders mirrors the aggregate rule at the command
	// boundary so an undersized selection is rejected before any I/O.
	ErrSelectionRequiresTwoOrders = errors.New("a swap selection requires at least two orders")
)

// SwapAgentOrdersCommand represents an agent's request to rotate selected
// orders within today's work queue. The selection has no upper bound;
// the lower bound is two, since rotating fewer positions changes nothing.
type SwapAgentOrdersCommand struct { //nolint:recvcheck //using for validation
	agentID   kernel.UUID
	selection []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSwapAgentOrdersCommand creates a command to rotate selected orders.
// Requires a valid agent ID and at least two distinct selected order IDs.
func NewSwapAgentOrdersCommand(agentID kernel.UUID, selection []kernel.UUID) (SwapAgentOrdersCommand, error) {
	cmd := SwapAgentOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setSelection(selection),
	); err != nil {
		return SwapAgentOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SwapAgentOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSwapAgentOrdersCommandIsNotConstructed)
}

// AgentID returns the agent whose queue is being reordered.
func (c SwapAgentOrdersCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Selection returns the selected order IDs.
func (c SwapAgentOrdersCommand) Selection() []kernel.UUID {
	out := make([]kernel.UUID, len(c.selection))
	copy(out, c.selection)
	return out
}

func (c *SwapAgentOrdersCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *SwapAgentOrdersCommand) setSelection(selection []kernel.UUID) error {
	if len(selection) < 2 {
		return ErrSelectionRequiresTwoOrders
	}

	seen := make(map[string]bool, len(selection))
	for _, id := range selection {
		if err := id.Validate(); err != nil {
			return err
		}
		if seen[id.String()] {
			return fmt.Errorf("order %s selected more than once", id)
		}
		seen[id.String()] = true
	}

	c.selection = make([]kernel.UUID, len(selection))
	copy(c.selection, selection)
	return nil
}
