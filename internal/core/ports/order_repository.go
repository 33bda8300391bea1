package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The order must be valid and not
	// already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order using optimistic
	// concurrency: the stored version must equal the version the aggregate
	// was loaded with, otherwise the update fails with a
	// ConcurrencyConflictError and the caller must re-fetch and retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetContainingParcel retrieves the modifiable order that currently holds
	// the given parcel. Returns an ObjectNotFoundError when no order holds it.
	GetContainingParcel(ctx context.Context, parcelID kernel.UUID) (*order.Order, error)
}
