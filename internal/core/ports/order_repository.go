package ports

import (
	"context"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted through this core; cancellation is out of scope.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The only mutations are agent assignment and fulfillment-step completion.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByAgentAndDate retrieves all orders assigned to an agent whose booked
	// window falls on the given day, in creation order. Used to build the
	// agent's daily work queue.
	GetByAgentAndDate(ctx context.Context, agentID kernel.UUID, date kernel.DayDate) ([]*order.Order, error)
}
