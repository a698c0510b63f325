package commands

import (
	"errors"

	"ironweb/internal/pkg/guard"
)

// PurgeExpiredSequencesCommand triggers removal of every stored agent queue
// dated before the current day. Issued by the scheduled sweep; carries no
// parameters, the cutoff is the handler's clock.
//
// Example:
//
//	cmd := NewPurgeExpiredSequencesCommand()
//	handler := NewPurgeExpiredSequencesCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Sequence purge failed: %v", err)
//	}
type PurgeExpiredSequencesCommand struct {
	guard guard.ConstructorGuard
}

var ErrPurgeExpiredSequencesCommandIsNotConstructed = errors.New(
	"PurgeExpiredSequencesCommand must be created via NewPurgeExpiredSequencesCommand constructor",
)

// NewPurgeExpiredSequencesCommand creates a command to purge stale queues.
// This is a parameterless command that sweeps all agents at once.
func NewPurgeExpiredSequencesCommand() PurgeExpiredSequencesCommand {
	command := PurgeExpiredSequencesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeExpiredSequencesCommandIsNotConstructed if validation fails.
func (c *PurgeExpiredSequencesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredSequencesCommandIsNotConstructed)
}
