package commands

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/ports"
)

// AddParcelToOrderCommandHandler adds a parcel to an order.
//
// The parcel is resolved in the parcels service before the transaction
// starts; an unknown parcel fails the command with an ObjectNotFoundError.
// Only the owning customer or an admin may modify the order.
type AddParcelToOrderCommandHandler struct {
	pipeline      *messaging.Pipeline
	parcelsClient ports.ParcelsClient
}

// NewAddParcelToOrderCommandHandler creates a handler for adding parcels to
// orders.
func NewAddParcelToOrderCommandHandler(
	pipeline *messaging.Pipeline,
	parcelsClient ports.ParcelsClient,
) AddParcelToOrderCommandHandler {
	return AddParcelToOrderCommandHandler{
		pipeline:      pipeline,
		parcelsClient: parcelsClient,
	}
}

// Handle processes the add-parcel command.
func (h *AddParcelToOrderCommandHandler) Handle(ctx context.Context, cmd AddParcelToOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcel, err := h.parcelsClient.GetByID(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err := authorizeOrderAccess(ctx, aggregate); err != nil {
			return err
		}

		if err := aggregate.AddParcel(parcel); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}
