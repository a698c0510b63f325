package queries

import (
	"context"

	"ironweb/internal/core/domain/services"
	"ironweb/internal/core/ports"
)

// GetAvailableSlotsQueryHandler computes bookable slot offers from the tier
// catalog and the current time.
type GetAvailableSlotsQueryHandler struct {
	planner services.SlotPlanner
	clock   ports.Clock
}

// NewGetAvailableSlotsQueryHandler creates a handler for slot availability queries.
func NewGetAvailableSlotsQueryHandler(
	planner services.SlotPlanner,
	clock ports.Clock,
) GetAvailableSlotsQueryHandler {
	return GetAvailableSlotsQueryHandler{
		planner: planner,
		clock:   clock,
	}
}

// Handle returns the offerable slots for the queried tier, in catalog order.
// The list is never empty: when today's cutoffs have all passed the full
// catalog is offered for tomorrow.
func (h GetAvailableSlotsQueryHandler) Handle(
	_ context.Context,
	query GetAvailableSlotsQuery,
) ([]GetAvailableSlotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers, err := h.planner.AvailableSlots(query.Tier(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	responses := make([]GetAvailableSlotsQueryResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, GetAvailableSlotsQueryResponse{
			Window: offer.Window,
			Day:    offer.Day,
			Date:   offer.Date,
		})
	}

	return responses, nil
}
