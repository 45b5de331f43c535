// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CatalogFactory provides access to the price catalog within a
	// transaction.
	CatalogFactory interface {
		PriceCatalog() ports.PriceCatalog
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCatalogUoW manages transactions for order creation, where the
	// catalog is read and the order written within one transaction so the
	// priced snapshot matches the catalog state the customer was quoted.
	OrderCatalogUoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
	}

	// OrderCatalogUoWFactory creates new order-plus-catalog unit of work
	// instances.
	OrderCatalogUoWFactory interface {
		Create() OrderCatalogUoW
	}

	// OrderUserUoW manages transactions that touch the order aggregate and
	// read the users collection, such as delivery person assignment.
	OrderUserUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderUserUoWFactory creates new order-plus-user unit of work instances.
	OrderUserUoWFactory interface {
		Create() OrderUserUoW
	}
)
