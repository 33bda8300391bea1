package commands

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/ports"
)

// ApproveOrderCommandHandler approves an order. Approval is an operator
// decision: only admins (or trusted internal traffic) may issue it.
type ApproveOrderCommandHandler struct {
	pipeline *messaging.Pipeline
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(pipeline *messaging.Pipeline) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		pipeline: pipeline,
	}
}

// Handle processes the approve command.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorizeAdmin(ctx, cmd.OrderID().String()); err != nil {
		return err
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err := aggregate.Approve(); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}
