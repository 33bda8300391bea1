package messaging

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

// Integration events are the stable wire contracts other services consume.
// They are decoupled from the internal domain event shapes: internal events
// may change freely as long as the mapper keeps producing these.

// IntegrationEvent is one externally-published event.
type IntegrationEvent interface {
	// Name returns the contract name used for routing, e.g. "order_completed".
	Name() string
	// Aggregate returns the id of the order the event belongs to. Brokers use
	// it as the partition key.
	Aggregate() kernel.UUID
}

// OrderCreated announces a newly created order.
type OrderCreated struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

// Name returns the contract name.
func (e OrderCreated) Name() string { return "order_created" }

// Aggregate returns the order id as partition key.
func (e OrderCreated) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// ParcelAddedToOrder announces a parcel joining an order.
type ParcelAddedToOrder struct {
	OrderID    string `json:"orderId"`
	ParcelID   string `json:"parcelId"`
	ParcelName string `json:"name"`
	Variant    string `json:"variant"`
	Size       string `json:"size"`
}

// Name returns the contract name.
func (e ParcelAddedToOrder) Name() string { return "parcel_added_to_order" }

// Aggregate returns the order id as partition key.
func (e ParcelAddedToOrder) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// ParcelDeletedFromOrder announces a parcel leaving an order.
type ParcelDeletedFromOrder struct {
	OrderID  string `json:"orderId"`
	ParcelID string `json:"parcelId"`
}

// Name returns the contract name.
func (e ParcelDeletedFromOrder) Name() string { return "parcel_deleted_from_order" }

// Aggregate returns the order id as partition key.
func (e ParcelDeletedFromOrder) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// OrderApproved announces an order approval.
type OrderApproved struct {
	OrderID string `json:"orderId"`
}

// Name returns the contract name.
func (e OrderApproved) Name() string { return "order_approved" }

// Aggregate returns the order id as partition key.
func (e OrderApproved) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// OrderCanceled announces an order cancellation with its reason.
type OrderCanceled struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// Name returns the contract name.
func (e OrderCanceled) Name() string { return "order_canceled" }

// Aggregate returns the order id as partition key.
func (e OrderCanceled) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// OrderCompleted announces a completed delivery.
type OrderCompleted struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

// Name returns the contract name.
func (e OrderCompleted) Name() string { return "order_completed" }

// Aggregate returns the order id as partition key.
func (e OrderCompleted) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// OrderDeleted announces a soft-deleted order.
type OrderDeleted struct {
	OrderID string `json:"orderId"`
}

// Name returns the contract name.
func (e OrderDeleted) Name() string { return "order_deleted" }

// Aggregate returns the order id as partition key.
func (e OrderDeleted) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// VehicleAssignedToOrder announces a vehicle assignment.
type VehicleAssignedToOrder struct {
	OrderID   string `json:"orderId"`
	VehicleID string `json:"vehicleId"`
}

// Name returns the contract name.
func (e VehicleAssignedToOrder) Name() string { return "vehicle_assigned_to_order" }

// Aggregate returns the order id as partition key.
func (e VehicleAssignedToOrder) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// OrderDeliveryDateChanged announces a delivery date change.
type OrderDeliveryDateChanged struct {
	OrderID      string    `json:"orderId"`
	DeliveryDate time.Time `json:"deliveryDate"`
}

// Name returns the contract name.
func (e OrderDeliveryDateChanged) Name() string { return "order_delivery_date_changed" }

// Aggregate returns the order id as partition key.
func (e OrderDeliveryDateChanged) Aggregate() kernel.UUID { return mustUUID(e.OrderID) }

// mustUUID parses an id that was rendered by kernel.UUID.String. Integration
// events are built exclusively from aggregate state, so a parse failure is a
// programming error.
func mustUUID(s string) kernel.UUID {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		panic("integration event carries a malformed aggregate id: " + s)
	}
	return id
}
