package ports

import (
	"context"

	"ironweb/internal/core/domain/model/agentday"
	"ironweb/internal/core/domain/model/kernel"
)

// SequenceRepository defines the persistence contract for agent-day sequences.
// At most one sequence exists per agent per calendar day; it is the
// backend-owned replacement for the device-local ordering and lock the agent
// application used to keep.
type SequenceRepository interface {
	// Add persists a new sequence. Fails if one already exists for the
	// agent and day.
	Add(ctx context.Context, aggregate *agentday.Sequence) error

	// Update persists changes to an existing sequence (reordering or locking).
	Update(ctx context.Context, aggregate *agentday.Sequence) error

	// GetByAgentAndDate retrieves the sequence for an agent and day.
	// Returns an ObjectNotFoundError when none exists.
	GetByAgentAndDate(ctx context.Context, agentID kernel.UUID, date kernel.DayDate) (*agentday.Sequence, error)

	// Delete removes the sequence for an agent and day, discarding both the
	// ordering and its lock. Used for the explicit unlock action.
	Delete(ctx context.Context, agentID kernel.UUID, date kernel.DayDate) error

	// DeleteExpired removes every sequence whose date precedes the given day.
	// Returns the number of sequences removed. Run by the daily sweep so stale
	// state from a previous day never shapes a new day's work.
	DeleteExpired(ctx context.Context, today kernel.DayDate) (int64, error)
}
