package commands

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/ports"
)

// DeleteOrderCommandHandler soft-deletes an order. Only the owning customer
// or an admin may delete it; completed orders cannot be deleted.
type DeleteOrderCommandHandler struct {
	pipeline *messaging.Pipeline
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(pipeline *messaging.Pipeline) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		pipeline: pipeline,
	}
}

// Handle processes the delete command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

		if err := aggregate.Delete(); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}
