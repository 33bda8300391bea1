package commands

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order. Only the owning customer or an
// admin may cancel it.
type CancelOrderCommandHandler struct {
	pipeline *messaging.Pipeline
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(pipeline *messaging.Pipeline) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		pipeline: pipeline,
	}
}

// Handle processes the cancel command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

		if err := aggregate.Cancel(cmd.Reason()); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}
