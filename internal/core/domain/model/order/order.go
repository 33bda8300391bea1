package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/events"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a customer's order. It owns the parcel set
// and the lifecycle status, enforces all transition rules, and records one
// domain event per successful mutation.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - The parcel set contains no duplicate parcel ids
//   - Status transitions follow the Status state machine; infrastructure never
//     sets status directly
//   - Every mutation is atomic-or-nothing: an invalid request leaves all
//     fields and the pending-event sequence untouched
//
// An Order instance is owned exclusively by the handler executing the current
// unit of work. Concurrent mutations of the same identity are serialized by
// optimistic concurrency control on the persisted version.
type Order struct {
	events.Recorder

	id           kernel.UUID
	customerID   kernel.UUID
	status       Status
	parcels      []Parcel
	vehicleID    *kernel.UUID
	deliveryDate *time.Time
	totalPrice   *float64

	// version is the persisted optimistic-concurrency counter. It reflects
	// the state the aggregate was loaded from; the repository bumps it on
	// every successful update.
	version int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in New status for the given customer and
// records a CreatedEvent. This is the only way to bring a new order into
// existence.
func NewOrder(id kernel.UUID, customerID kernel.UUID) (*Order, error) {
	order := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	order.Record(CreatedEvent{OrderID: id, CustomerID: customerID})
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. No events are
// recorded; the aggregate reflects already-committed state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	parcels []Parcel,
	vehicleID *kernel.UUID,
	deliveryDate *time.Time,
	totalPrice *float64,
	version int,
) (*Order, error) {
	order := &Order{
		parcels:       parcels,
		vehicleID:     vehicleID,
		deliveryDate:  deliveryDate,
		totalPrice:    totalPrice,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer owning the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Parcels returns the parcels currently in the order, in insertion order.
// The returned slice is the aggregate's backing storage; callers must not
// mutate it.
func (o *Order) Parcels() []Parcel {
	return o.parcels
}

// HasParcel reports whether a parcel with the given id is part of the order.
func (o *Order) HasParcel(parcelID kernel.UUID) bool {
	for _, p := range o.parcels {
		if p.ID().IsEqual(parcelID) {
			return true
		}
	}
	return false
}

// Vehicle returns the assigned vehicle's id, or nil if none is assigned.
func (o *Order) Vehicle() *kernel.UUID {
	return o.vehicleID
}

// DeliveryDate returns the planned delivery date, or nil if not set.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// TotalPrice returns the order's total price, or nil if not priced yet.
func (o *Order) TotalPrice() *float64 {
	return o.totalPrice
}

// Version returns the optimistic-concurrency version the aggregate was
// loaded with.
func (o *Order) Version() int {
	return o.version
}

// AddParcel adds a parcel to the order and records a ParcelAddedEvent.
//
// Fails with InvalidStateTransitionError when the order is no longer
// modifiable and with DuplicateParcelError when a parcel with the same id is
// already present. On failure nothing is mutated and no event is recorded.
func (o *Order) AddParcel(parcel Parcel) error {
	if err := parcel.ID().Validate(); err != nil {
		return err
	}
	if !o.status.IsModifiable() {
		return errs.NewInvalidStateTransitionError("add parcel to", o.status.String())
	}
	if o.HasParcel(parcel.ID()) {
		return errs.NewDuplicateParcelError(parcel.ID().String())
	}

	o.parcels = append(o.parcels, parcel)
	o.Record(ParcelAddedEvent{OrderID: o.id, Parcel: parcel})
	return nil
}

// DeleteParcel removes the parcel with the given id and records a
// ParcelDeletedEvent.
//
// Fails with InvalidStateTransitionError when the order is no longer
// modifiable and with ObjectNotFoundError when no such parcel exists.
func (o *Order) DeleteParcel(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	if !o.status.IsModifiable() {
		return errs.NewInvalidStateTransitionError("delete parcel from", o.status.String())
	}

	for i, p := range o.parcels {
		if p.ID().IsEqual(parcelID) {
			o.parcels = append(o.parcels[:i], o.parcels[i+1:]...)
			o.Record(ParcelDeletedEvent{OrderID: o.id, ParcelID: parcelID})
			return nil
		}
	}

	return errs.NewObjectNotFoundError("parcel", parcelID.String())
}

// Approve moves the order from New to Approved and records an ApprovedEvent.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Record(ApprovedEvent{OrderID: o.id})
	return nil
}

// Cancel moves the order to Canceled and records a CanceledEvent carrying
// the cancellation reason.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Record(CanceledEvent{OrderID: o.id, Reason: reason})
	return nil
}

// Complete moves the order from Approved to Completed and records a
// CompletedEvent. Re-applying completion to an already-Completed order is
// rejected by the state machine, making redelivered delivery-completion
// events idempotent from the caller's perspective.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Record(CompletedEvent{OrderID: o.id, CustomerID: o.customerID})
	return nil
}

// Delete soft-deletes the order and records a DeletedEvent.
func (o *Order) Delete() error {
	newStatus, err := o.status.Delete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Record(DeletedEvent{OrderID: o.id})
	return nil
}

// AssignVehicle assigns a delivery vehicle, sets the delivery date and total
// price, and records a VehicleAssignedEvent followed by a
// DeliveryDateSetEvent.
//
// Fails with InvalidStateTransitionError when the order is no longer
// modifiable. On failure nothing is mutated and no event is recorded.
func (o *Order) AssignVehicle(vehicleID kernel.UUID, deliveryDate time.Time, totalPrice float64) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if !o.status.IsModifiable() {
		return errs.NewInvalidStateTransitionError("assign vehicle to", o.status.String())
	}
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("total price")
	}

	o.vehicleID = &vehicleID
	o.deliveryDate = &deliveryDate
	o.totalPrice = &totalPrice
	o.Record(VehicleAssignedEvent{OrderID: o.id, VehicleID: vehicleID})
	o.Record(DeliveryDateSetEvent{OrderID: o.id, DeliveryDate: deliveryDate})
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer ID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
