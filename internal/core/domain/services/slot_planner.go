package services

import (
	"time"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/tier"
)

// SlotDay tags a slot offer with the calendar day it is offered for.
type SlotDay int

const (
	// SlotToday means the window is still bookable on the current day.
	SlotToday SlotDay = iota

	// SlotTomorrow means today's cutoffs have all passed and the window is
	// offered for the next day instead.
	SlotTomorrow
)

func getSlotDayStrings() map[SlotDay]string {
	return map[SlotDay]string{
		SlotToday:    "today",
		SlotTomorrow: "tomorrow",
	}
}

// String returns "today" or "tomorrow".
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (d SlotDay) String() string {
	if str, ok := getSlotDayStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// SlotOffer is one bookable slot produced by the planner: a window from the
// tier's catalog, the day tag, and the concrete calendar date it resolves to.
type SlotOffer struct {
	Window tier.TimeWindow
	Day    SlotDay
	Date   kernel.DayDate
}

// SlotPlanner computes which pickup/delivery slots are legally offerable for a
// service tier at a given wall-clock time.
//
// The rule: a window is offerable today while the clock is strictly before
// the window's end minus the tier's cutoff buffer. If at least one window
// survives that test, exactly those windows are offered for today; otherwise
// the entire catalog is offered for tomorrow, because the full day opens again
// once the clock rolls over. A result never mixes today and tomorrow offers.
//
// Example:
//
//	planner := services.NewSlotPlanner()
//	offers, err := planner.AvailableSlots(tier.Normal, time.Now())
type SlotPlanner struct{}

// NewSlotPlanner creates a new SlotPlanner instance.
func NewSlotPlanner() SlotPlanner {
	return SlotPlanner{}
}

// AvailableSlots returns the bookable slots for a tier at the given time,
// in catalog order. All offers share the same day tag: today's survivors,
// or the full catalog for tomorrow when every cutoff has passed.
func (p SlotPlanner) AvailableSlots(t tier.Tier, now time.Time) ([]SlotOffer, error) {
	cfg, err := tier.ConfigFor(t)
	if err != nil {
		return nil, err
	}

	windows := cfg.Windows()
	bufferMinutes := int(cfg.Buffer().Minutes())
	nowMinutes := now.Hour()*60 + now.Minute()

	today := kernel.NewDayDate(now)
	offers := make([]SlotOffer, 0, len(windows))
	for _, w := range windows {
		deadline := w.EndMinute() - bufferMinutes
		if nowMinutes < deadline {
			offers = append(offers, SlotOffer{Window: w, Day: SlotToday, Date: today})
		}
	}

	if len(offers) > 0 {
		return offers, nil
	}

	tomorrow := kernel.NewDayDate(now.AddDate(0, 0, 1))
	for _, w := range windows {
		offers = append(offers, SlotOffer{Window: w, Day: SlotTomorrow, Date: tomorrow})
	}

	return offers, nil
}

// IsOfferable reports whether a specific window on a specific date is among
// the slots currently offerable for the tier. Order creation re-runs this
// check at submission time so no order is ever created against a slot whose
// deadline has since passed.
func (p SlotPlanner) IsOfferable(t tier.Tier, window tier.TimeWindow, date kernel.DayDate, now time.Time) (bool, error) {
	if err := window.Validate(); err != nil {
		return false, err
	}
	if err := date.Validate(); err != nil {
		return false, err
	}

	offers, err := p.AvailableSlots(t, now)
	if err != nil {
		return false, err
	}

	for _, offer := range offers {
		if offer.Window.IsEqual(window) && offer.Date.IsEqual(date) {
			return true, nil
		}
	}

	return false, nil
}
