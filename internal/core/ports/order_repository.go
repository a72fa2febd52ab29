// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and event publishing.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency: the stored row must still carry the version the aggregate
	// was loaded with. Returns a ConcurrencyConflictError when another writer
	// got there first, and an ObjectNotFoundError when the order does not
	// exist at all.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, status, and version.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal
	// status, oldest first. Used by couriers to find work.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveByCourier retrieves the courier's own in-flight orders,
	// oldest first.
	GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
