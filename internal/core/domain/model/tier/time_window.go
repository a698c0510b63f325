package tier

import (
	"fmt"

	"ironweb/internal/pkg/errs"
	"ironweb/internal/pkg/guard"
)

const (
	// MinutesPerDay is the number of minutes in a calendar day.
	// Window boundaries are expressed as minutes from midnight within [0, MinutesPerDay].
	MinutesPerDay = 24 * 60
)

// ErrTimeWindowIsNotConstructed is returned when validating a zero-value TimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow is an immutable value object representing a pickup/delivery window
// within a calendar day, as half-open minute offsets from midnight.
// Minute granularity is required because the Lightning catalog uses
// ninety-minute windows that start and end on half hours.
//
// Example:
//
//	w, err := tier.NewTimeWindow(6*60, 13*60) // 06:00-13:00
type TimeWindow struct { //nolint:recvcheck //using for validation
	startMinute int
	endMinute   int
	guard       guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow from start and end minute offsets.
// Both offsets must lie within [0, MinutesPerDay] and start must precede end.
func NewTimeWindow(startMinute int, endMinute int) (TimeWindow, error) {
	w := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if startMinute < 0 || startMinute > MinutesPerDay {
		return TimeWindow{}, errs.NewValueIsOutOfRangeError("start minute", startMinute, 0, MinutesPerDay)
	}
	if endMinute < 0 || endMinute > MinutesPerDay {
		return TimeWindow{}, errs.NewValueIsOutOfRangeError("end minute", endMinute, 0, MinutesPerDay)
	}
	if startMinute >= endMinute {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("start %d is not before end %d", startMinute, endMinute))
	}

	w.startMinute = startMinute
	w.endMinute = endMinute
	return w, nil
}

// StartMinute returns the window start as minutes from midnight.
func (w TimeWindow) StartMinute() int {
	return w.startMinute
}

// EndMinute returns the window end as minutes from midnight.
func (w TimeWindow) EndMinute() int {
	return w.endMinute
}

// IsEqual compares two windows by their boundaries.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.startMinute == other.startMinute && w.endMinute == other.endMinute
}

// String returns the window in "HH:MM-HH:MM" form.
func (w TimeWindow) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		w.startMinute/60, w.startMinute%60,
		w.endMinute/60, w.endMinute%60)
}

// Validate ensures the TimeWindow was created through its constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}
