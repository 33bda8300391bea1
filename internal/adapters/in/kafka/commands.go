package kafka

import (
	"context"
	"encoding/json"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Inbound command type names. Commands arrive over the same topic as
// integration events and are routed by the message_type header.
const (
	TypeCreateOrder           = "create_order"
	TypeApproveOrder          = "approve_order"
	TypeCancelOrder           = "cancel_order"
	TypeDeleteOrder           = "delete_order"
	TypeAddParcelToOrder      = "add_parcel_to_order"
	TypeDeleteParcelFromOrder = "delete_parcel_from_order"
	TypeAssignVehicleToOrder  = "assign_vehicle_to_order"
)

// CommandHandlers bundles the command handlers reachable over messaging.
type CommandHandlers struct {
	CreateOrder   commands.CreateOrderCommandHandler
	AddParcel     commands.AddParcelToOrderCommandHandler
	DeleteParcel  commands.DeleteParcelFromOrderCommandHandler
	Approve       commands.ApproveOrderCommandHandler
	Cancel        commands.CancelOrderCommandHandler
	Delete        commands.DeleteOrderCommandHandler
	AssignVehicle commands.AssignVehicleCommandHandler
}

// Wire shapes of the inbound commands.
type (
	createOrderPayload struct {
		OrderID    string `json:"orderId"`
		CustomerID string `json:"customerId"`
	}
	orderPayload struct {
		OrderID string `json:"orderId"`
	}
	cancelOrderPayload struct {
		OrderID string `json:"orderId"`
		Reason  string `json:"reason"`
	}
	parcelPayload struct {
		OrderID  string `json:"orderId"`
		ParcelID string `json:"parcelId"`
	}
	assignVehiclePayload struct {
		OrderID      string    `json:"orderId"`
		VehicleID    string    `json:"vehicleId"`
		DeliveryDate time.Time `json:"deliveryDate"`
	}
)

// dispatchCommand routes one inbound command message. The bool result
// reports whether messageType named a command at all.
func (c *Consumer) dispatchCommand(ctx context.Context, messageType string, payload []byte) (bool, error) {
	switch messageType {
	case TypeCreateOrder:
		var body createOrderPayload
		if err := json.Unmarshal(payload, &body); err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		orderID, err := kernel.UUIDFromString(body.OrderID)
		if err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		customerID, err := kernel.UUIDFromString(body.CustomerID)
		if err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("customer id", err)
		}
		cmd, err := commands.NewCreateOrderCommand(orderID, customerID)
		if err != nil {
			return true, err
		}
		return true, c.handlers.Commands.CreateOrder.Handle(ctx, cmd)

	case TypeApproveOrder:
		orderID, err := decodeOrderID(payload)
		if err != nil {
			return true, err
		}
		cmd, err := commands.NewApproveOrderCommand(orderID)
		if err != nil {
			return true, err
		}
		return true, c.handlers.Commands.Approve.Handle(ctx, cmd)

	case TypeCancelOrder:
		var body cancelOrderPayload
		if err := json.Unmarshal(payload, &body); err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		orderID, err := kernel.UUIDFromString(body.OrderID)
		if err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason)
		if err != nil {
			return true, err
		}
		return true, c.handlers.Commands.Cancel.Handle(ctx, cmd)

	case TypeDeleteOrder:
		orderID, err := decodeOrderID(payload)
		if err != nil {
			return true, err
		}
		cmd, err := commands.NewDeleteOrderCommand(orderID)
		if err != nil {
			return true, err
		}
		return true, c.handlers.Commands.Delete.Handle(ctx, cmd)

	case TypeAddParcelToOrder:
		orderID, parcelID, err := decodeParcelIDs(payload)
		if err != nil {
			return true, err
		}
		cmd, err := commands.NewAddParcelToOrderCommand(orderID, parcelID)
		if err != nil {
			return true, err
		}
		return true, c.handlers.Commands.AddParcel.Handle(ctx, cmd)

	case TypeDeleteParcelFromOrder:
		orderID, parcelID, err := decodeParcelIDs(payload)
		if err != nil {
			return true, err
		}
		cmd, err := commands.NewDeleteParcelFromOrderCommand(orderID, parcelID)
		if err != nil {
			return true, err
		}
		return true, c.handlers.Commands.DeleteParcel.Handle(ctx, cmd)

	case TypeAssignVehicleToOrder:
		var body assignVehiclePayload
		if err := json.Unmarshal(payload, &body); err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		orderID, err := kernel.UUIDFromString(body.OrderID)
		if err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		vehicleID, err := kernel.UUIDFromString(body.VehicleID)
		if err != nil {
			return true, errs.NewValueIsInvalidErrorWithCause("vehicle id", err)
		}
		cmd, err := commands.NewAssignVehicleCommand(orderID, vehicleID, body.DeliveryDate)
		if err != nil {
			return true, err
		}
		return true, c.handlers.Commands.AssignVehicle.Handle(ctx, cmd)

	default:
		return false, nil
	}
}

func decodeOrderID(payload []byte) (kernel.UUID, error) {
	var body orderPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return orderID, nil
}

func decodeParcelIDs(payload []byte) (kernel.UUID, kernel.UUID, error) {
	var body parcelPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	parcelID, err := kernel.UUIDFromString(body.ParcelID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("parcel id", err)
	}
	return orderID, parcelID, nil
}
