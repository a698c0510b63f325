package commands

import (
	"context"
	"errors"

	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/services"
	"ironweb/internal/core/ports"
)

// ErrSlotNoLongerOfferable is returned when the chosen slot's booking cutoff
// passed between selection and submission. The customer must pick again from
// the currently offerable slots.
var ErrSlotNoLongerOfferable = errors.New("the chosen slot is no longer offerable")

// CreateOrderCommandHandler handles the business logic for booking an order.
// It re-validates the chosen slot against the clock at handling time, resolves
// authoritative unit prices from the catalog, prices the cart, and persists
// the new order with an all-pending fulfillment flow.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, planner, pricing, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory BookingUoWFactory
	planner    services.SlotPlanner
	pricing    services.PricingService
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order booking operations.
func NewCreateOrderCommandHandler(
	uowFactory BookingUoWFactory,
	planner services.SlotPlanner,
	pricing services.PricingService,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		pricing:    pricing,
		clock:      clock,
	}
}

// Handle processes the booking command.
// Returns ErrSlotNoLongerOfferable when the slot's cutoff has passed since the
// customer selected it; nothing is persisted in that case.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	offerable, err := h.planner.IsOfferable(cmd.Tier(), cmd.Window(), cmd.WindowDate(), h.clock.Now())
	if err != nil {
		return err
	}
	if !offerable {
		return ErrSlotNoLongerOfferable
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := h.resolveLines(ctx, uow, cmd.Selections())
	if err != nil {
		return err
	}

	pricing, err := h.pricing.Quote(lines, cmd.Tier())
	if err != nil {
		return err
	}

	booked, err := order.NewOrder(
		cmd.OrderID(),
		lines,
		cmd.Tier(),
		cmd.Window(),
		cmd.WindowDate(),
		cmd.PaymentType(),
		pricing,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, booked); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveLines turns cart selections into priced item lines using catalog prices.
func (h *CreateOrderCommandHandler) resolveLines(
	ctx context.Context,
	uow BookingUoW,
	selections []ItemSelection,
) ([]order.ItemLine, error) {
	itemRepo := uow.ItemRepository()
	lines := make([]order.ItemLine, 0, len(selections))

	for _, sel := range selections {
		catalogItem, err := itemRepo.Get(ctx, sel.ItemID)
		if err != nil {
			return nil, err
		}

		line, err := order.NewItemLine(catalogItem.ID(), catalogItem.Name(), catalogItem.UnitPrice(), sel.Quantity)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
