package ports

import (
	"context"

	"ironweb/internal/core/domain/model/item"
	"ironweb/internal/core/domain/model/kernel"
)

// ItemRepository defines the read contract for the bookable garment catalog.
// The catalog is maintained outside this core; order creation reads it to
// resolve authoritative unit prices.
type ItemRepository interface {
	// Get retrieves a catalog item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAll retrieves the full bookable catalog, in name order.
	GetAll(ctx context.Context) ([]*item.Item, error)
}
