package tier

import (
	"time"

	"ironweb/internal/core/domain/model/kernel"
)

// Per-tier booking cutoff buffers. A window stops being bookable this long
// before the window ends; slower tiers need longer processing lead time.
const (
	normalBuffer    = 3 * time.Hour
	expressBuffer   = 2 * time.Hour
	lightningBuffer = 1 * time.Hour
)

// Per-tier fixed delivery fees in whole currency units.
const (
	normalFee    = 30
	expressFee   = 60
	lightningFee = 100
)

// Config carries everything tier-dependent in one place: the fixed window
// catalog for a calendar day, the booking cutoff buffer, and the delivery fee.
// Both the slot planner and the pricing service read from this single table,
// so catalogs, buffers, and fees cannot drift apart.
type Config struct {
	windows     []TimeWindow
	buffer      time.Duration
	deliveryFee kernel.Money
}

// Windows returns a copy of the tier's fixed window catalog, in day order.
func (c Config) Windows() []TimeWindow {
	out := make([]TimeWindow, len(c.windows))
	copy(out, c.windows)
	return out
}

// Buffer returns the booking cutoff buffer before each window's end.
func (c Config) Buffer() time.Duration {
	return c.buffer
}

// DeliveryFee returns the tier's fixed delivery fee.
func (c Config) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// ConfigFor returns the configuration for a valid tier.
// Returns an error for Unknown or out-of-range tiers.
func ConfigFor(t Tier) (Config, error) {
	if err := t.Validate(); err != nil {
		return Config{}, err
	}

	fees := map[Tier]int64{
		Normal:    normalFee,
		Express:   expressFee,
		Lightning: lightningFee,
	}
	buffers := map[Tier]time.Duration{
		Normal:    normalBuffer,
		Express:   expressBuffer,
		Lightning: lightningBuffer,
	}

	fee, err := kernel.NewMoneyFromInt(fees[t])
	if err != nil {
		return Config{}, err
	}

	windows, err := catalogFor(t)
	if err != nil {
		return Config{}, err
	}

	return Config{
		windows:     windows,
		buffer:      buffers[t],
		deliveryFee: fee,
	}, nil
}

// catalogFor builds the fixed window catalog for a tier.
// Normal: two ~7h windows. Express: five 3h windows. Lightning: eight 90m windows.
func catalogFor(t Tier) ([]TimeWindow, error) {
	var bounds [][2]int

	switch t { //nolint:exhaustive // caller validated the tier
	case Normal:
		bounds = [][2]int{
			{6 * 60, 13 * 60},
			{13 * 60, 20 * 60},
		}
	case Express:
		bounds = [][2]int{
			{6 * 60, 9 * 60},
			{9 * 60, 12 * 60},
			{12 * 60, 15 * 60},
			{15 * 60, 18 * 60},
			{18 * 60, 21 * 60},
		}
	case Lightning:
		bounds = [][2]int{
			{6 * 60, 7*60 + 30},
			{7*60 + 30, 9 * 60},
			{9 * 60, 10*60 + 30},
			{10*60 + 30, 12 * 60},
			{12 * 60, 13*60 + 30},
			{13*60 + 30, 15 * 60},
			{15 * 60, 16*60 + 30},
			{16*60 + 30, 18 * 60},
		}
	}

	windows := make([]TimeWindow, 0, len(bounds))
	for _, b := range bounds {
		w, err := NewTimeWindow(b[0], b[1])
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return windows, nil
}
