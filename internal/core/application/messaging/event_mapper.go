package messaging

import (
	"fmt"

	"orders/internal/core/domain/events"
	"orders/internal/core/domain/model/order"
)

// EventMapper translates internal domain events into the integration events
// published to other services.
//
// The mapping is total and pure: every domain event variant an aggregate can
// produce has exactly one integration-event shape, and MapAll preserves the
// input order because downstream consumers may depend on causal ordering.
// An unmapped variant is a programming error and panics rather than becoming
// a retryable runtime condition.
type EventMapper struct{}

// NewEventMapper creates an EventMapper.
func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

// MapAll maps a sequence of domain events, preserving order.
func (m *EventMapper) MapAll(domainEvents []events.DomainEvent) []IntegrationEvent {
	mapped := make([]IntegrationEvent, 0, len(domainEvents))
	for _, e := range domainEvents {
		mapped = append(mapped, m.Map(e))
	}
	return mapped
}

// Map maps a single domain event to its integration-event contract.
func (m *EventMapper) Map(event events.DomainEvent) IntegrationEvent {
	switch e := event.(type) {
	case order.CreatedEvent:
		return OrderCreated{
			OrderID:    e.OrderID.String(),
			CustomerID: e.CustomerID.String(),
		}
	case order.ParcelAddedEvent:
		return ParcelAddedToOrder{
			OrderID:    e.OrderID.String(),
			ParcelID:   e.Parcel.ID().String(),
			ParcelName: e.Parcel.Name(),
			Variant:    e.Parcel.Variant(),
			Size:       e.Parcel.Size(),
		}
	case order.ParcelDeletedEvent:
		return ParcelDeletedFromOrder{
			OrderID:  e.OrderID.String(),
			ParcelID: e.ParcelID.String(),
		}
	case order.ApprovedEvent:
		return OrderApproved{OrderID: e.OrderID.String()}
	case order.CanceledEvent:
		return OrderCanceled{OrderID: e.OrderID.String(), Reason: e.Reason}
	case order.CompletedEvent:
		return OrderCompleted{
			OrderID:    e.OrderID.String(),
			CustomerID: e.CustomerID.String(),
		}
	case order.DeletedEvent:
		return OrderDeleted{OrderID: e.OrderID.String()}
	case order.VehicleAssignedEvent:
		return VehicleAssignedToOrder{
			OrderID:   e.OrderID.String(),
			VehicleID: e.VehicleID.String(),
		}
	case order.DeliveryDateSetEvent:
		return OrderDeliveryDateChanged{
			OrderID:      e.OrderID.String(),
			DeliveryDate: e.DeliveryDate,
		}
	default:
		panic(fmt.Sprintf("no integration event mapped for domain event %q", event.EventName()))
	}
}
