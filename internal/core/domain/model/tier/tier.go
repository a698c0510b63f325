package tier

import (
	"fmt"

	"ironweb/internal/pkg/errs"
)

// Tier represents the delivery service level chosen by a customer.
// The tier determines which pickup/delivery time windows exist, how close to a
// window's end the booking cutoff falls, and the delivery fee charged.
//
// Tier is a closed enum: pricing rules and slot catalogs are defined for
// exactly these values, so any other value is rejected by Validate.
type Tier int

const (
	// Unknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Tier values.
	Unknown Tier = iota

	// Normal is the standard service level: two wide windows per day,
	// the longest booking cutoff, and the lowest fee. The only tier
	// eligible for volume-based free delivery.
	Normal

	// Express is the faster service level: five three-hour windows per day.
	Express

	// Lightning is the fastest service level: eight ninety-minute windows
	// per day and the shortest booking cutoff.
	Lightning
)

// getTierStrings returns a map of Tier values to their string representations.
// All tiers are included for string conversion.
func getTierStrings() map[Tier]string {
	return map[Tier]string{
		Unknown:   "Unknown",
		Normal:    "Normal",
		Express:   "Express",
		Lightning: "Lightning",
	}
}

// getValidTierStrings returns a map of only valid Tier values.
// Only valid tiers are included to support validation.
func getValidTierStrings() map[Tier]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Tier]string{
		Normal:    "Normal",
		Express:   "Express",
		Lightning: "Lightning",
	}
}

// Validate checks if the Tier value is valid.
// Valid tiers are Normal, Express, and Lightning; Unknown (0) and any
// other values are invalid. Use it to check Tier values arriving from
// external sources before use.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier is invalid", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the human-readable name of the tier.
// Returns "Unknown" for invalid tier values. Implements fmt.Stringer and is
// safe to call on any Tier value.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TierFromString parses a tier from its string name.
// Accepts exactly the names produced by String for valid tiers.
func TierFromString(s string) (Tier, error) {
	for t, name := range getValidTierStrings() {
		if name == s {
			return t, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("tier is invalid", fmt.Errorf("%q is not a valid tier name", s))
}
