package queries

import (
	"context"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/services"
	"ironweb/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPriceQuoteQueryHandler prices a cart using catalog prices from the
// database. The client's idea of a price never enters the calculation.
type GetPriceQuoteQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingService
}

// NewGetPriceQuoteQueryHandler creates a handler for price quote queries.
func NewGetPriceQuoteQueryHandler(db *gorm.DB, pricing services.PricingService) GetPriceQuoteQueryHandler {
	return GetPriceQuoteQueryHandler{
		db:      db,
		pricing: pricing,
	}
}

// Handle computes the price breakdown for the queried cart and tier.
// An empty cart quotes as all zeros without touching the database. Fails
// with an ObjectNotFoundError when a selected item is not in the catalog.
func (h GetPriceQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetPriceQuoteQuery,
) (GetPriceQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceQuoteQueryResponse{}, err
	}

	selections := query.Selections()
	if len(selections) == 0 {
		return GetPriceQuoteQueryResponse{
			Subtotal:    kernel.ZeroMoney(),
			DeliveryFee: kernel.ZeroMoney(),
			HandlingFee: kernel.ZeroMoney(),
			Total:       kernel.ZeroMoney(),
		}, nil
	}

	catalog, err := h.loadCatalogEntries(ctx, selections)
	if err != nil {
		return GetPriceQuoteQueryResponse{}, err
	}

	lines := make([]order.ItemLine, 0, len(selections))
	for _, sel := range selections {
		entry, ok := catalog[sel.ItemID.String()]
		if !ok {
			return GetPriceQuoteQueryResponse{}, errs.NewObjectNotFoundError("item", sel.ItemID)
		}

		line, lineErr := order.NewItemLine(sel.ItemID, entry.name, entry.unitPrice, sel.Quantity)
		if lineErr != nil {
			return GetPriceQuoteQueryResponse{}, lineErr
		}
		lines = append(lines, line)
	}

	priced, err := h.pricing.Quote(lines, query.Tier())
	if err != nil {
		return GetPriceQuoteQueryResponse{}, err
	}

	return GetPriceQuoteQueryResponse{
		Subtotal:     priced.Subtotal(),
		DeliveryFee:  priced.DeliveryFee(),
		HandlingFee:  priced.HandlingFee(),
		Total:        priced.Total(),
		FreeDelivery: priced.IsFreeDelivery(),
	}, nil
}

type catalogEntry struct {
	name      string
	unitPrice kernel.Money
}

func (h GetPriceQuoteQueryHandler) loadCatalogEntries(
	ctx context.Context,
	selections []QuoteSelection,
) (map[string]catalogEntry, error) {
	ids := make([]uuid.UUID, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.ItemID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit_price
		FROM items
		WHERE id IN ?
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalog := make(map[string]catalogEntry, len(selections))

	for rows.Next() {
		var id uuid.UUID
		var name string
		var unitPrice decimal.Decimal

		if err = rows.Scan(&id, &name, &unitPrice); err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		catalog[id.String()] = catalogEntry{name: name, unitPrice: price}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}
