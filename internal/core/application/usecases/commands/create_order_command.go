package commands

import (
	"errors"
	"fmt"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)

	// ErrNoItemsSelected is returned when every selection carries zero quantity.
	// Submission with an empty cart is a validation error, never sent further.
	ErrNoItemsSelected = errors.New("at least one item with a positive quantity is required")
)

// ItemSelection is one cart entry as submitted by the customer: an item
// reference and the chosen quantity. Quantities are client-adjustable down
// to zero; zero-quantity selections are dropped, not rejected.
type ItemSelection struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a request to book a garment pickup and delivery.
// It carries the customer's cart, the chosen tier, the chosen slot, and the
// payment type. Unit prices are deliberately absent: the handler resolves them
// from the catalog so the client can never set its own prices.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, selections, tier.Normal, window, date, order.Online)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	selections  []ItemSelection
	serviceTier tier.Tier
	window      tier.TimeWindow
	windowDate  kernel.DayDate
	paymentType order.PaymentType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to book an order.
// Zero-quantity selections are dropped; the remaining set must be non-empty
// with no duplicate items. Tier, window, date, and payment type must be valid.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	selections []ItemSelection,
	serviceTier tier.Tier,
	window tier.TimeWindow,
	windowDate kernel.DayDate,
	paymentType order.PaymentType,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSelections(selections),
		cmd.setTier(serviceTier),
		cmd.setWindow(window),
		cmd.setWindowDate(windowDate),
		cmd.setPaymentType(paymentType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Selections returns the non-empty, deduplicated cart entries.
func (c CreateOrderCommand) Selections() []ItemSelection {
	out := make([]ItemSelection, len(c.selections))
	copy(out, c.selections)
	return out
}

// Tier returns the chosen delivery tier.
func (c CreateOrderCommand) Tier() tier.Tier {
	return c.serviceTier
}

// Window returns the chosen pickup/delivery window.
func (c CreateOrderCommand) Window() tier.TimeWindow {
	return c.window
}

// WindowDate returns the calendar day the window was chosen for.
func (c CreateOrderCommand) WindowDate() kernel.DayDate {
	return c.windowDate
}

// PaymentType returns how the customer chose to pay.
func (c CreateOrderCommand) PaymentType() order.PaymentType {
	return c.paymentType
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []ItemSelection) error {
	kept := make([]ItemSelection, 0, len(selections))
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

	if len(kept) == 0 {
		return ErrNoItemsSelected
	}

	c.selections = kept
	return nil
}

func (c *CreateOrderCommand) setTier(t tier.Tier) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.serviceTier = t
	return nil
}

func (c *CreateOrderCommand) setWindow(w tier.TimeWindow) error {
	if err := w.Validate(); err != nil {
		return err
	}
	c.window = w
	return nil
}

func (c *CreateOrderCommand) setWindowDate(d kernel.DayDate) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c.windowDate = d
	return nil
}

func (c *CreateOrderCommand) setPaymentType(p order.PaymentType) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.paymentType = p
	return nil
}
