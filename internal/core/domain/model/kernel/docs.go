// Package kernel provides core domain primitives for the garment pickup and
// delivery booking system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A value object for exact, non-negative monetary amounts backed by decimal arithmetic
//   - DayDate: A value object for a calendar day, used to scope agent work sequences
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
