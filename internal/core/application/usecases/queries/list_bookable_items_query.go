package queries

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/guard"
)

var ErrListBookableItemsQueryIsNotConstructed = errors.New(
	"ListBookableItemsQuery must be created via NewListBookableItemsQuery constructor",
)

// ListBookableItemsQuery retrieves the garment catalog a customer can book
// from. Prices in the response are the authoritative ones; the booking
// command re-reads them and ignores anything the client submits.
//
// Example:
//
//	query := NewListBookableItemsQuery()
//	items, err := handler.Handle(ctx, query)
type ListBookableItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListBookableItemsQuery creates a query to list the garment catalog.
// This is a parameterless query that fetches every bookable item.
func NewListBookableItemsQuery() ListBookableItemsQuery {
	return ListBookableItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListBookableItemsQuery) Validate() error {
	return q.guard.Validate(ErrListBookableItemsQueryIsNotConstructed)
}

// ListBookableItemsQueryResponse represents one catalog entry.
type ListBookableItemsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	UnitPrice kernel.Money
}
