package services

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"
)

// ErrNoItemsToPrice is returned when pricing an empty cart. Callers blocking
// order submission surface this inline; the quote preview reports zeros instead.
var ErrNoItemsToPrice = errors.New("no items to price")

// HandlingFeeUnits is the fixed handling fee, in whole currency units,
// applied to every order regardless of tier or volume.
const HandlingFeeUnits = 10

// freeDeliveryThreshold is the garment count a Normal-tier cart must exceed
// for the delivery fee to be waived.
const freeDeliveryThreshold = 9

// PricingService prices a cart against the tier configuration table.
//
// Rules:
//   - subtotal is the sum of unit price times quantity over all lines
//   - delivery is free only on the Normal tier with more than nine garments;
//     Express and Lightning always charge their fee regardless of volume
//   - a fixed handling fee applies to every order
//   - total = subtotal + delivery fee + handling fee, exactly
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// Quote prices the given item lines for a tier and returns the breakdown.
// Returns ErrNoItemsToPrice for an empty cart.
func (s PricingService) Quote(items []order.ItemLine, t tier.Tier) (order.Pricing, error) {
	if len(items) == 0 {
		return order.Pricing{}, ErrNoItemsToPrice
	}

	cfg, err := tier.ConfigFor(t)
	if err != nil {
		return order.Pricing{}, err
	}

	subtotal := kernel.ZeroMoney()
	totalCount := 0
	for _, line := range items {
		if err = line.Validate(); err != nil {
			return order.Pricing{}, err
		}
		subtotal = subtotal.Add(line.LineTotal())
		totalCount += line.Quantity()
	}

	freeDelivery := totalCount > freeDeliveryThreshold && t == tier.Normal
	deliveryFee := cfg.DeliveryFee()
	if freeDelivery {
		deliveryFee = kernel.ZeroMoney()
	}

	handlingFee, err := kernel.NewMoneyFromInt(HandlingFeeUnits)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.NewPricing(subtotal, deliveryFee, handlingFee, freeDelivery)
}
