// Package services provides domain services for the booking system: logic
// that operates over multiple value objects and aggregates without naturally
// belonging to a single aggregate root.
//
// The package includes:
//   - SlotPlanner: Computes which pickup/delivery slots are legally offerable
//     for a tier at a given wall-clock time, with same-day/next-day fallback
//   - PricingService: Prices a cart from item lines and the tier configuration,
//     applying the volume-based free-delivery rule
//
// Both services are pure: they take the clock and inputs as arguments and
// keep no state, which makes every rule directly testable.
package services
