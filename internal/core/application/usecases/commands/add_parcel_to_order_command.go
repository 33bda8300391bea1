package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrAddParcelToOrderCommandIsNotConstructed = errors.New(
	"AddParcelToOrderCommand must be created via NewAddParcelToOrderCommand constructor",
)

// AddParcelToOrderCommand represents a request to add an existing parcel to
// an order. The parcel's details are looked up in the parcels service.
type AddParcelToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddParcelToOrderCommand creates a command to add a parcel to an order.
func NewAddParcelToOrderCommand(orderID kernel.UUID, parcelID kernel.UUID) (AddParcelToOrderCommand, error) {
	cmd := AddParcelToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParcelID(parcelID),
	); err != nil {
		return AddParcelToOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddParcelToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelToOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddParcelToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ParcelID returns the identifier of the parcel to add.
func (c AddParcelToOrderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *AddParcelToOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddParcelToOrderCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
