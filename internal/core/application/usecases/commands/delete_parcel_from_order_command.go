package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrDeleteParcelFromOrderCommandIsNotConstructed = errors.New(
	"DeleteParcelFromOrderCommand must be created via NewDeleteParcelFromOrderCommand constructor",
)

// DeleteParcelFromOrderCommand represents a request to remove a parcel from
// an order.
type DeleteParcelFromOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteParcelFromOrderCommand creates a command to remove a parcel from
// an order.
func NewDeleteParcelFromOrderCommand(orderID kernel.UUID, parcelID kernel.UUID) (DeleteParcelFromOrderCommand, error) {
	cmd := DeleteParcelFromOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParcelID(parcelID),
	); err != nil {
		return DeleteParcelFromOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelFromOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DeleteParcelFromOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ParcelID returns the identifier of the parcel to remove.
func (c DeleteParcelFromOrderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *DeleteParcelFromOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteParcelFromOrderCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
