// Package ports defines the persistence and messaging contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored as a single record with its line items and status
// history embedded as ordered sequences, so the creation-time snapshot
// invariants hold without join-time drift.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the aggregate's version: if another writer got there
	// first, Update reports a version conflict and persists nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by a customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByDeliveryPerson retrieves all orders currently assigned to a
	// delivery person, newest first.
	GetByDeliveryPerson(ctx context.Context, deliveryPersonID kernel.UUID) ([]*order.Order, error)

	// GetUnassigned retrieves all orders in REQUESTED status with no
	// delivery person, oldest first so they are worked in arrival order.
	GetUnassigned(ctx context.Context) ([]*order.Order, error)
}
