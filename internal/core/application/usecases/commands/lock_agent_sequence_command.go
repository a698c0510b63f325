package commands

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/guard"
)

var ErrLockAgentSequenceCommandIsNotConstructed = errors.New(
	"LockAgentSequenceCommand must be created via NewLockAgentSequenceCommand constructor",
)

// LockAgentSequenceCommand represents an agent's request to freeze today's
// order queue. A locked queue rejects further reordering until it is
// explicitly unlocked or the day rolls over.
type LockAgentSequenceCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLockAgentSequenceCommand creates a command to lock an agent's queue.
func NewLockAgentSequenceCommand(agentID kernel.UUID) (LockAgentSequenceCommand, error) {
	cmd := LockAgentSequenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentID(agentID); err != nil {
		return LockAgentSequenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LockAgentSequenceCommand) Validate() error {
	return c.guard.Validate(ErrLockAgentSequenceCommandIsNotConstructed)
}

// AgentID returns the agent whose queue is being locked.
func (c LockAgentSequenceCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *LockAgentSequenceCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
