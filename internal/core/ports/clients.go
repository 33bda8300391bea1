package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// External collaborator clients. Each returns the resource or an
// ObjectNotFoundError; "not found" is a terminal precondition failure for the
// current command and is never retried internally.

// ParcelsClient looks up parcels in the parcels service.
type ParcelsClient interface {
	GetByID(ctx context.Context, id kernel.UUID) (order.Parcel, error)
}

// Vehicle is the vehicle resource as exposed by the vehicles service.
type Vehicle struct {
	ID             kernel.UUID
	PricePerWeight float64
}

// VehiclesClient looks up vehicles in the vehicles service.
type VehiclesClient interface {
	GetByID(ctx context.Context, id kernel.UUID) (Vehicle, error)
}

// PricingClient computes the total price of an order delivery.
type PricingClient interface {
	GetOrderPrice(ctx context.Context, customerID kernel.UUID, vehicleID kernel.UUID, deliveryDate time.Time) (float64, error)
}
