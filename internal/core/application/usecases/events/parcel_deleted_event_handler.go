package events

import (
	"context"
	"errors"

	"orders/internal/core/application/messaging"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"go.uber.org/zap"
)

// ParcelDeletedEventHandler removes a platform-deleted parcel from the order
// that still holds it.
type ParcelDeletedEventHandler struct {
	pipeline *messaging.Pipeline
	log      *zap.Logger
}

// NewParcelDeletedEventHandler creates a handler for parcel deletion events.
func NewParcelDeletedEventHandler(pipeline *messaging.Pipeline, log *zap.Logger) ParcelDeletedEventHandler {
	return ParcelDeletedEventHandler{
		pipeline: pipeline,
		log:      log,
	}
}

// Handle removes the parcel from its containing order. When no modifiable
// order holds the parcel the event is a no-op: the parcel was never added,
// was already removed, or a redelivery arrives after the removal committed.
func (h *ParcelDeletedEventHandler) Handle(ctx context.Context, event ParcelDeleted) error {
	parcelID, err := kernel.UUIDFromString(event.ParcelID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("parcel id", err)
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.GetContainingParcel(ctx, parcelID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				h.log.Debug("no order holds deleted parcel",
					zap.String("parcel_id", parcelID.String()))
				return nil
			}
			return err
		}

		if err := aggregate.DeleteParcel(parcelID); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}
