package kernel

import (
	"fmt"
	"time"

	"ironweb/internal/pkg/errs"
	"ironweb/internal/pkg/guard"
)

// dayDateLayout is the canonical calendar-day format used for persistence
// and comparison of agent work days.
const dayDateLayout = "2006-01-02"

// ErrDayDateIsNotConstructed is returned when validating a zero-value DayDate.
var ErrDayDateIsNotConstructed = errs.NewValueIsRequiredError(
	"day date must be created via NewDayDate or DayDateFromString constructors")

// DayDate is an immutable value object representing a single calendar day
// without a time component. Agent work sequences are scoped to a DayDate:
// a sequence stored for one day must never survive into the next, so equality
// of DayDate values is the freshness check for sequences and their locks.
type DayDate struct {
	value string
	guard guard.ConstructorGuard
}

// NewDayDate creates a DayDate from the calendar day of the given time,
// interpreted in the time's own location.
func NewDayDate(t time.Time) DayDate {
	return DayDate{
		value: t.Format(dayDateLayout),
		guard: guard.NewConstructorGuard(),
	}
}

// DayDateFromString parses a DayDate from "YYYY-MM-DD" form.
// Returns an error for any other format.
func DayDateFromString(s string) (DayDate, error) {
	if _, err := time.Parse(dayDateLayout, s); err != nil {
		return DayDate{}, errs.NewValueIsInvalidErrorWithCause(
			"day date", fmt.Errorf("%q is not a calendar day: %w", s, err))
	}

	return DayDate{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the "YYYY-MM-DD" representation.
func (d DayDate) String() string {
	return d.value
}

// IsEqual reports whether both values name the same calendar day.
func (d DayDate) IsEqual(other DayDate) bool {
	return d.value == other.value
}

// Validate ensures the DayDate was created through a constructor.
func (d DayDate) Validate() error {
	return d.guard.Validate(ErrDayDateIsNotConstructed)
}
