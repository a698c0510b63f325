// Package order provides domain entities and business logic for garment
// pickup-and-delivery bookings. It implements the Order aggregate root with
// its priced item lines and fulfillment workflow.
//
// The package includes:
//   - Order: The aggregate root owning items, slot, payment type, pricing, and flow
//   - Flow: The ordered fulfillment state machine (Picked up -> In process ->
//     Out for delivery -> Delivered) with a prefix-completion invariant
//   - ItemLine and Pricing: Value objects for cart contents and the priced breakdown
//   - PaymentType: A closed enum of payment choices
//   - VerificationGate: The external capability gating terminal delivery hand-off
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-empty cart
//   - The fulfillment sequence is fixed at creation; completed steps always
//     form a prefix, and advancing is the only permitted mutation
//   - The terminal step of an online-payment order cannot complete without a
//     satisfied verification gate, re-checked on every interaction
//   - An order's total always equals subtotal + delivery fee + handling fee
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
