package queries_test

import (
	"testing"
	"time"

	"ironweb/internal/core/application/usecases/queries"
	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func slotsHandlerAt(hour, minute int) (queries.GetAvailableSlotsQueryHandler, fixedClock) {
	clock := fixedClock{now: time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)}
	return queries.NewGetAvailableSlotsQueryHandler(services.NewSlotPlanner(), clock), clock
}

func TestGetAvailableSlotsQueryHandler_Handle_TodayOffers(t *testing.T) {
	ctx := t.Context()
	handler, clock := slotsHandlerAt(7, 0)
	query, err := queries.NewGetAvailableSlotsQuery(tier.Express)
	require.NoError(t, err)

	offers, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, offers, 4)
	today := kernel.NewDayDate(clock.now)
	for _, offer := range offers {
		assert.Equal(t, services.SlotToday, offer.Day)
		assert.True(t, offer.Date.IsEqual(today))
	}
	assert.Equal(t, "09:00-12:00", offers[0].Window.String())
}

func TestGetAvailableSlotsQueryHandler_Handle_RollsToTomorrow(t *testing.T) {
	ctx := t.Context()
	handler, clock := slotsHandlerAt(20, 0)
	query, err := queries.NewGetAvailableSlotsQuery(tier.Express)
	require.NoError(t, err)

	offers, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, offers, 5)
	tomorrow := kernel.NewDayDate(clock.now.AddDate(0, 0, 1))
	for _, offer := range offers {
		assert.Equal(t, services.SlotTomorrow, offer.Day)
		assert.True(t, offer.Date.IsEqual(tomorrow))
	}
}

func TestGetAvailableSlotsQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	handler, _ := slotsHandlerAt(7, 0)
	query := queries.GetAvailableSlotsQuery{} // not constructed properly

	_, err := handler.Handle(ctx, query)

	require.Error(t, err)
}

func TestNewGetAvailableSlotsQuery_InvalidTier(t *testing.T) {
	_, err := queries.NewGetAvailableSlotsQuery(tier.Unknown)

	require.Error(t, err)
}
