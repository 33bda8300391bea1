package commands

import (
	"context"

	"orders/internal/core/application/messaging"
	"orders/internal/core/ports"
)

// AssignVehicleCommandHandler assigns a delivery vehicle to an order.
//
// The vehicle is resolved in the vehicles service and the total price is
// computed by the pricing service before the transaction starts. Assignment
// is an operator decision: only admins (or trusted internal traffic) may
// issue it.
type AssignVehicleCommandHandler struct {
	pipeline       *messaging.Pipeline
	vehiclesClient ports.VehiclesClient
	pricingClient  ports.PricingClient
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment.
func NewAssignVehicleCommandHandler(
	pipeline *messaging.Pipeline,
	vehiclesClient ports.VehiclesClient,
	pricingClient ports.PricingClient,
) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		pipeline:       pipeline,
		vehiclesClient: vehiclesClient,
		pricingClient:  pricingClient,
	}
}

// Handle processes the assign-vehicle command.
func (h *AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorizeAdmin(ctx, cmd.OrderID().String()); err != nil {
		return err
	}

	vehicle, err := h.vehiclesClient.GetByID(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	return h.pipeline.Execute(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		price, err := h.pricingClient.GetOrderPrice(ctx, aggregate.CustomerID(), vehicle.ID, cmd.DeliveryDate())
		if err != nil {
			return err
		}

		if err := aggregate.AssignVehicle(vehicle.ID, cmd.DeliveryDate(), price); err != nil {
			return err
		}

		return orderRepo.Update(ctx, aggregate)
	})
}
