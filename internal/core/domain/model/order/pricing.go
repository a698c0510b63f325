package order

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when validating a zero-value Pricing.
var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing constructor")

// Pricing is an immutable value object holding an order's priced breakdown.
// The grand total is computed inside the constructor as
// subtotal + delivery fee + handling fee, so a Pricing whose components do not
// sum to its total cannot exist.
type Pricing struct { //nolint:recvcheck //using for validation
	subtotal     kernel.Money
	deliveryFee  kernel.Money
	handlingFee  kernel.Money
	total        kernel.Money
	freeDelivery bool

	guard guard.ConstructorGuard
}

// NewPricing creates a Pricing from its components.
// All amounts must be constructed Money values. When freeDelivery is set the
// delivery fee must be zero.
func NewPricing(subtotal, deliveryFee, handlingFee kernel.Money, freeDelivery bool) (Pricing, error) {
	if err := errors.Join(
		subtotal.Validate(),
		deliveryFee.Validate(),
		handlingFee.Validate(),
	); err != nil {
		return Pricing{}, err
	}

	if freeDelivery && !deliveryFee.IsZero() {
		return Pricing{}, errors.New("free delivery requires a zero delivery fee")
	}

	return Pricing{
		subtotal:     subtotal,
		deliveryFee:  deliveryFee,
		handlingFee:  handlingFee,
		total:        subtotal.Add(deliveryFee).Add(handlingFee),
		freeDelivery: freeDelivery,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Pricing was created through the constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// Subtotal returns the sum of all line totals.
func (p Pricing) Subtotal() kernel.Money {
	return p.subtotal
}

// DeliveryFee returns the charged delivery fee (zero when delivery is free).
func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// HandlingFee returns the fixed handling fee applied to every order.
func (p Pricing) HandlingFee() kernel.Money {
	return p.handlingFee
}

// Total returns subtotal + delivery fee + handling fee.
func (p Pricing) Total() kernel.Money {
	return p.total
}

// IsFreeDelivery reports whether the volume-based free-delivery rule applied.
func (p Pricing) IsFreeDelivery() bool {
	return p.freeDelivery
}
