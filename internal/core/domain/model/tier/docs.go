// Package tier defines the delivery service levels offered to customers and
// the single configuration table that drives slot availability and pricing.
//
// The package includes:
//   - Tier: A closed enum of service levels (Normal, Express, Lightning)
//   - TimeWindow: A value object for a pickup/delivery window within a day
//   - Config: The per-tier window catalog, booking cutoff buffer, and delivery fee
//
// Key business rules:
//   - Each tier has a fixed catalog of windows covering a calendar day
//   - A window stops being bookable buffer-hours before its end
//   - Slower tiers carry larger buffers and lower fees
//   - Only the Normal tier participates in volume-based free delivery
package tier
