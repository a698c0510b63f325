package commands

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/guard"
)

var ErrUnlockAgentSequenceCommandIsNotConstructed = errors.New(
	"UnlockAgentSequenceCommand must be created via NewUnlockAgentSequenceCommand constructor",
)

// UnlockAgentSequenceCommand represents an agent's request to discard today's
// frozen queue. Unlocking always succeeds, whether or not a lock is in place.
type UnlockAgentSequenceCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnlockAgentSequenceCommand creates a command to unlock an agent's queue.
func NewUnlockAgentSequenceCommand(agentID kernel.UUID) (UnlockAgentSequenceCommand, error) {
	cmd := UnlockAgentSequenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentID(agentID); err != nil {
		return UnlockAgentSequenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnlockAgentSequenceCommand) Validate() error {
	return c.guard.Validate(ErrUnlockAgentSequenceCommandIsNotConstructed)
}

// AgentID returns the agent whose queue is being unlocked.
func (c UnlockAgentSequenceCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *UnlockAgentSequenceCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
