package events

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"go.uber.org/zap"
)

// DeliveryEventsHandler reacts to the delivery service's lifecycle events:
// a completed delivery completes the order, a failed delivery cancels it,
// and a started delivery is only acknowledged.
type DeliveryEventsHandler struct {
	pipeline *messaging.Pipeline
	log      *zap.Logger
}

// NewDeliveryEventsHandler creates a handler for delivery lifecycle events.
func NewDeliveryEventsHandler(pipeline *messaging.Pipeline, log *zap.Logger) DeliveryEventsHandler {
	return DeliveryEventsHandler{
		pipeline: pipeline,
		log:      log,
	}
}

// HandleDeliveryCompleted completes the order the delivery belonged to.
// A redelivered event finds the order already Completed and fails with a
// terminal InvalidStateTransitionError, so the consumer does not retry.
func (h *DeliveryEventsHandler) HandleDeliveryCompleted(ctx context.Context, event DeliveryCompleted) error {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		if err := aggregate.Complete(); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}

// HandleDeliveryFailed cancels the order the failed delivery belonged to,
// carrying the delivery service's reason on the OrderCanceled event.
func (h *DeliveryEventsHandler) HandleDeliveryFailed(ctx context.Context, event DeliveryFailed) error {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	reason := event.Reason
	if reason == "" {
		reason = "delivery failed"
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		if err := aggregate.Cancel(reason); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}

// HandleDeliveryStarted verifies the order exists and logs the pickup.
// No state changes: the order stays Approved while in delivery.
func (h *DeliveryEventsHandler) HandleDeliveryStarted(ctx context.Context, event DeliveryStarted) error {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		aggregate, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return err
		}

		h.log.Info("delivery started",
			zap.String("order_id", aggregate.ID().String()),
			zap.String("status", aggregate.Status().String()),
		)
		return nil
	})
}
