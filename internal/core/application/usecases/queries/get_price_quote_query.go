package queries

import (
	"errors"
	"fmt"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/pkg/guard"
)

var ErrGetPriceQuoteQueryIsNotConstructed = errors.New(
	"GetPriceQuoteQuery must be created via NewGetPriceQuoteQuery constructor",
)

// QuoteSelection is one cart entry being priced: an item reference and the
// chosen quantity. Zero-quantity entries are dropped, not rejected, so a
// customer zeroing out a line mid-edit still gets a quote.
type QuoteSelection struct {
	ItemID   kernel.UUID
	Quantity int
}

// GetPriceQuoteQuery computes the live price breakdown for a cart before any
// booking happens. The quote is advisory; the booking command re-prices the
// cart from the catalog at submission time.
//
// Example:
//
//	query, err := NewGetPriceQuoteQuery(selections, tier.Normal)
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, query)
type GetPriceQuoteQuery struct { //nolint:recvcheck //using for validation
	selections  []QuoteSelection
	serviceTier tier.Tier

	guard guard.ConstructorGuard
}

// NewGetPriceQuoteQuery creates a query to price a cart against a tier.
// An empty cart is valid and quotes as all zeros.
func NewGetPriceQuoteQuery(selections []QuoteSelection, serviceTier tier.Tier) (GetPriceQuoteQuery, error) {
	query := GetPriceQuoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setSelections(selections),
		query.setTier(serviceTier),
	); err != nil {
		return GetPriceQuoteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPriceQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceQuoteQueryIsNotConstructed)
}

// Selections returns the deduplicated cart entries with positive quantities.
func (q GetPriceQuoteQuery) Selections() []QuoteSelection {
	out := make([]QuoteSelection, len(q.selections))
	copy(out, q.selections)
	return out
}

// Tier returns the delivery tier the cart is priced against.
func (q GetPriceQuoteQuery) Tier() tier.Tier {
	return q.serviceTier
}

func (q *GetPriceQuoteQuery) setSelections(selections []QuoteSelection) error {
	kept := make([]QuoteSelection, 0, len(selections))
	seen := make(map[string]bool, len(selections))

	for _, sel := range selections {
		if sel.Quantity == 0 {
			continue
		}
		if sel.Quantity < 0 {
			return fmt.Errorf("quantity %d for item %s is negative", sel.Quantity, sel.ItemID)
		}
		if err := sel.ItemID.Validate(); err != nil {
			return err
		}
		if seen[sel.ItemID.String()] {
			return fmt.Errorf("item %s selected more than once", sel.ItemID)
		}
		seen[sel.ItemID.String()] = true
		kept = append(kept, sel)
	}

	q.selections = kept
	return nil
}

func (q *GetPriceQuoteQuery) setTier(t tier.Tier) error {
	if err := t.Validate(); err != nil {
		return err
	}
	q.serviceTier = t
	return nil
}

// GetPriceQuoteQueryResponse is the price breakdown for a cart.
// Total is always Subtotal + DeliveryFee + HandlingFee; when FreeDelivery
// is true the delivery fee is zero.
type GetPriceQuoteQueryResponse struct {
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	HandlingFee  kernel.Money
	Total        kernel.Money
	FreeDelivery bool
}
