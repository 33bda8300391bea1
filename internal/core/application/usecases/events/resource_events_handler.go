package events

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ResourceEventsHandler reacts to the reservation service's events: a
// successful reservation approves the order, a canceled reservation cancels
// it.
type ResourceEventsHandler struct {
	pipeline *messaging.Pipeline
}

// NewResourceEventsHandler creates a handler for reservation events.
func NewResourceEventsHandler(pipeline *messaging.Pipeline) ResourceEventsHandler {
	return ResourceEventsHandler{
		pipeline: pipeline,
	}
}

// HandleResourceReserved approves the order whose resources were reserved.
func (h *ResourceEventsHandler) HandleResourceReserved(ctx context.Context, event ResourceReserved) error {
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

		if err := aggregate.Approve(); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}

// HandleResourceReservationCanceled cancels the order whose reservation was
// released.
func (h *ResourceEventsHandler) HandleResourceReservationCanceled(
	ctx context.Context,
	event ResourceReservationCanceled,
) error {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	reason := event.Reason
	if reason == "" {
		reason = "resource reservation canceled"
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
