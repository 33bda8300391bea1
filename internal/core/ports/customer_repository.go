package ports

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for the local customer
// projection.
type CustomerRepository interface {
	// Add persists a newly known customer. Adding an already-known customer
	// is a no-op so that redelivered CustomerCreated events stay idempotent.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Exists reports whether a customer with the given id is known.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
