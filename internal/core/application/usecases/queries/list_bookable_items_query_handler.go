package queries

import (
	"context"

	"ironweb/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListBookableItemsQueryHandler reads the garment catalog from the database.
type ListBookableItemsQueryHandler struct {
	db *gorm.DB
}

// NewListBookableItemsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewListBookableItemsQueryHandler(db *gorm.DB) ListBookableItemsQueryHandler {
	return ListBookableItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all bookable items.
// Results are sorted by name for stable catalog output.
func (h ListBookableItemsQueryHandler) Handle(
	ctx context.Context,
	query ListBookableItemsQuery,
) ([]ListBookableItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ListBookableItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit_price
		FROM items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var unitPrice decimal.Decimal

		if err = rows.Scan(&id, &name, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, ListBookableItemsQueryResponse{
			ID:        itemID,
			Name:      name,
			UnitPrice: price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
