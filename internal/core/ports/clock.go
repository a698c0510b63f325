package ports

import "time"

// Clock abstracts wall-clock time so slot cutoffs, step timestamps, and
// day-rollover checks can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
