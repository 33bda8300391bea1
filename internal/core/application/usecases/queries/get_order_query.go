package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ParcelResponse is one parcel inside an order response.
type ParcelResponse struct {
	ID      kernel.UUID `json:"id"`
	Name    string      `json:"name"`
	Variant string      `json:"variant"`
	Size    string      `json:"size"`
}

// OrderResponse is the read-side representation of an order.
type OrderResponse struct {
	ID           kernel.UUID      `json:"id"`
	CustomerID   kernel.UUID      `json:"customerId"`
	Status       string           `json:"status"`
	Parcels      []ParcelResponse `json:"parcels,omitempty"`
	VehicleID    *kernel.UUID     `json:"vehicleId,omitempty"`
	DeliveryDate *time.Time       `json:"deliveryDate,omitempty"`
	TotalPrice   *float64         `json:"totalPrice,omitempty"`
}
