package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

// Domain events produced by Order mutation methods. Each successful mutation
// records the event(s) that describe the change; the outbox capture pipeline
// consumes them exactly once per unit of work.

// CreatedEvent is recorded when a new order is created.
type CreatedEvent struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
}

// EventName returns the event kind name.
func (e CreatedEvent) EventName() string { return "order_created" }

// ParcelAddedEvent is recorded when a parcel joins the order.
type ParcelAddedEvent struct {
	OrderID kernel.UUID
	Parcel  Parcel
}

// EventName returns the event kind name.
func (e ParcelAddedEvent) EventName() string { return "parcel_added" }

// ParcelDeletedEvent is recorded when a parcel is removed from the order.
type ParcelDeletedEvent struct {
	OrderID  kernel.UUID
	ParcelID kernel.UUID
}

// EventName returns the event kind name.
func (e ParcelDeletedEvent) EventName() string { return "parcel_deleted" }

// ApprovedEvent is recorded when the order is approved.
type ApprovedEvent struct {
	OrderID kernel.UUID
}

// EventName returns the event kind name.
func (e ApprovedEvent) EventName() string { return "order_approved" }

// CanceledEvent is recorded when the order is canceled.
type CanceledEvent struct {
	OrderID kernel.UUID
	Reason  string
}

// EventName returns the event kind name.
func (e CanceledEvent) EventName() string { return "order_canceled" }

// CompletedEvent is recorded when the order's delivery completes.
type CompletedEvent struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
}

// EventName returns the event kind name.
func (e CompletedEvent) EventName() string { return "order_completed" }

// DeletedEvent is recorded when the order is soft-deleted.
type DeletedEvent struct {
	OrderID kernel.UUID
}

// EventName returns the event kind name.
func (e DeletedEvent) EventName() string { return "order_deleted" }

// VehicleAssignedEvent is recorded when a vehicle is assigned to the order.
type VehicleAssignedEvent struct {
	OrderID   kernel.UUID
	VehicleID kernel.UUID
}

// EventName returns the event kind name.
func (e VehicleAssignedEvent) EventName() string { return "vehicle_assigned" }

// DeliveryDateSetEvent is recorded when the order's delivery date changes.
type DeliveryDateSetEvent struct {
	OrderID      kernel.UUID
	DeliveryDate time.Time
}

// EventName returns the event kind name.
func (e DeliveryDateSetEvent) EventName() string { return "delivery_date_set" }
