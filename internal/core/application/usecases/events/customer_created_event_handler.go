package events

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CustomerCreatedEventHandler records newly registered customers in the local
// projection so order creation can verify ownership.
type CustomerCreatedEventHandler struct {
	pipeline *messaging.Pipeline
}

// NewCustomerCreatedEventHandler creates a handler for customer registration
// events.
func NewCustomerCreatedEventHandler(pipeline *messaging.Pipeline) CustomerCreatedEventHandler {
	return CustomerCreatedEventHandler{
		pipeline: pipeline,
	}
}

// Handle inserts the customer into the local projection. The repository
// treats an already-known customer as a no-op, so redeliveries are harmless.
func (h *CustomerCreatedEventHandler) Handle(ctx context.Context, event CustomerCreated) error {
	customerID, err := kernel.UUIDFromString(event.CustomerID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}

	aggregate, err := customer.NewCustomer(customerID)
	if err != nil {
		return err
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.CustomerRepository().Add(ctx, aggregate)
	})
}
