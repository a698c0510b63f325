// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ironweb/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SequenceRepoFactory provides access to the sequence repository within a transaction.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	// ItemRepoFactory provides access to the catalog repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BookingUoW manages transactions that read the catalog and write orders.
	// Used by order creation, which resolves authoritative unit prices.
	BookingUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// SequenceUoW manages transactions across agent sequences and orders.
	// Sequence commands read orders to build a day's queue implicitly.
	SequenceUoW interface {
		TxManager
		SequenceRepoFactory
		OrderRepoFactory
	}

	// SequenceUoWFactory creates new sequence unit of work instances.
	SequenceUoWFactory interface {
		Create() SequenceUoW
	}
)
