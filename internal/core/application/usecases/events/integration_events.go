// Package events contains the handlers for integration events consumed from
// other services. Each handler runs inside the capture pipeline: the state
// change it makes and the outbox messages it produces commit together.
//
// Handlers are written for at-least-once delivery. A redelivered event either
// finds its work already done and fails with a terminal business error, or is
// a no-op; the consumer commits the inbound offset in both cases and retries
// only on transient errors.
package events

// DeliveryCompleted is published by the delivery service when a delivery for
// an order finished successfully.
type DeliveryCompleted struct {
	OrderID string `json:"orderId"`
}

// DeliveryFailed is published by the delivery service when a delivery could
// not be completed.
type DeliveryFailed struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// DeliveryStarted is published by the delivery service when a courier picked
// up an order.
type DeliveryStarted struct {
	OrderID string `json:"orderId"`
}

// ParcelDeleted is published by the parcels service when a parcel is removed
// from the platform. Any order still holding it must drop it.
type ParcelDeleted struct {
	ParcelID string `json:"parcelId"`
}

// ResourceReserved is published by the reservation service when all resources
// an order needs were reserved.
type ResourceReserved struct {
	OrderID string `json:"orderId"`
}

// ResourceReservationCanceled is published by the reservation service when a
// reservation for an order was released.
type ResourceReservationCanceled struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// CustomerCreated is published by the customers service when a new customer
// registers.
type CustomerCreated struct {
	CustomerID string `json:"customerId"`
}
