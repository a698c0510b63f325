// Package queries contains read operations implementing the query side of CQRS.
// Query handlers bypass the domain aggregates and repositories, reading either
// from the database directly with raw SQL or from pure domain services, and
// return response structs shaped for presentation.
package queries

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/core/domain/services"
	"ironweb/internal/pkg/guard"
)

var ErrGetAvailableSlotsQueryIsNotConstructed = errors.New(
	"GetAvailableSlotsQuery must be created via NewGetAvailableSlotsQuery constructor",
)

// GetAvailableSlotsQuery retrieves the slots currently bookable for a service
// tier. The answer depends only on the tier's catalog and the wall clock, so
// the handler never touches the database.
//
// Example:
//
//	query, err := NewGetAvailableSlotsQuery(tier.Express)
//	if err != nil {
//	    return err
//	}
//	slots, err := handler.Handle(ctx, query)
type GetAvailableSlotsQuery struct { //nolint:recvcheck //using for validation
	tier tier.Tier

	guard guard.ConstructorGuard
}

// NewGetAvailableSlotsQuery creates a query for a tier's bookable slots.
func NewGetAvailableSlotsQuery(t tier.Tier) (GetAvailableSlotsQuery, error) {
	query := GetAvailableSlotsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTier(t); err != nil {
		return GetAvailableSlotsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableSlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableSlotsQueryIsNotConstructed)
}

// Tier returns the service tier the slots are requested for.
func (q GetAvailableSlotsQuery) Tier() tier.Tier {
	return q.tier
}

func (q *GetAvailableSlotsQuery) setTier(t tier.Tier) error {
	if err := t.Validate(); err != nil {
		return err
	}
	q.tier = t
	return nil
}

// GetAvailableSlotsQueryResponse represents one bookable slot offer.
// All offers in a single response carry the same day and date: the planner
// never mixes today's remaining windows with tomorrow's catalog.
type GetAvailableSlotsQueryResponse struct {
	Window tier.TimeWindow
	Day    services.SlotDay
	Date   kernel.DayDate
}
