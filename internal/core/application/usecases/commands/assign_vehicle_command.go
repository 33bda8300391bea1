package commands

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrAssignVehicleCommandIsNotConstructed = errors.New(
		"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
	)
	// ErrDeliveryDateIsRequired is a validation rejection, so commands
	// arriving over messaging are not redelivered when the date is missing.
	ErrDeliveryDateIsRequired error = errs.NewValueIsRequiredError("delivery date")
)

// AssignVehicleCommand represents a request to assign a delivery vehicle to
// an order and schedule its delivery. Pricing is computed from the vehicle
// and the delivery date.
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vehicleID    kernel.UUID
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to assign a vehicle to an order.
func NewAssignVehicleCommand(
	orderID kernel.UUID,
	vehicleID kernel.UUID,
	deliveryDate time.Time,
) (AssignVehicleCommand, error) {
	cmd := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVehicleID(vehicleID),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignVehicleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID returns the identifier of the vehicle to assign.
func (c AssignVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DeliveryDate returns the planned delivery date.
func (c AssignVehicleCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

func (c *AssignVehicleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *AssignVehicleCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.deliveryDate = deliveryDate
	return nil
}
