package commands

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the owning customer is known locally before creating the order.
//
// The handler runs through the capture pipeline: the new order's CreatedEvent
// is persisted to the outbox in the same transaction as the order itself.
type CreateOrderCommandHandler struct {
	pipeline *messaging.Pipeline
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(pipeline *messaging.Pipeline) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		pipeline: pipeline,
	}
}

// Handle processes the order creation command. Rejects the command with an
// ObjectNotFoundError when the customer is unknown.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		known, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
		if err != nil {
			return err
		}
		if !known {
			return errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
		}

		aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID())
		if err != nil {
			return err
		}

		return uow.OrderRepository().Add(ctx, aggregate)
	})
}
