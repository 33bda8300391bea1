package commands

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/ports"
)

// DeleteParcelFromOrderCommandHandler removes a parcel from an order.
// Only the owning customer or an admin may modify the order.
type DeleteParcelFromOrderCommandHandler struct {
	pipeline *messaging.Pipeline
}

// NewDeleteParcelFromOrderCommandHandler creates a handler for removing
// parcels from orders.
func NewDeleteParcelFromOrderCommandHandler(pipeline *messaging.Pipeline) DeleteParcelFromOrderCommandHandler {
	return DeleteParcelFromOrderCommandHandler{
		pipeline: pipeline,
	}
}

// Handle processes the delete-parcel command.
func (h *DeleteParcelFromOrderCommandHandler) Handle(ctx context.Context, cmd DeleteParcelFromOrderCommand) error {
	if err := cmd.Validate(); err != nil {
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

		if err := aggregate.DeleteParcel(cmd.ParcelID()); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}
