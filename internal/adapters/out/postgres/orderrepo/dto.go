// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The parcel set is stored as a JSONB column on the order
// row: parcels have no identity outside their order, so the aggregate is one
// row and optimistic concurrency covers it as a whole.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID   `gorm:"type:uuid;index"`
	Status       int         `gorm:"index"`
	Parcels      []ParcelDTO `gorm:"serializer:json;type:jsonb"`
	VehicleID    *uuid.UUID  `gorm:"type:uuid"`
	DeliveryDate *time.Time
	TotalPrice   *float64
	Version      int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ParcelDTO is one parcel inside the order's JSONB parcel column.
type ParcelDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Variant string    `json:"variant"`
	Size    string    `json:"size"`
}

// fromDomain converts an order domain aggregate to its database
// representation. The DTO carries the version the aggregate was loaded with;
// Update bumps it.
func fromDomain(aggregate *order.Order) OrderDTO {
	var vehicleID *uuid.UUID
	if id := aggregate.Vehicle(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	parcels := make([]ParcelDTO, 0, len(aggregate.Parcels()))
	for _, p := range aggregate.Parcels() {
		parcels = append(parcels, ParcelDTO{
			ID:      p.ID().Bytes(),
			Name:    p.Name(),
			Variant: p.Variant(),
			Size:    p.Size(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Status:       int(aggregate.Status()),
		Parcels:      parcels,
		VehicleID:    vehicleID,
		DeliveryDate: aggregate.DeliveryDate(),
		TotalPrice:   aggregate.TotalPrice(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so no events are recorded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	parcels := make([]order.Parcel, 0, len(dto.Parcels))
	for _, p := range dto.Parcels {
		parcelID, parcelErr := kernel.UUIDFromBytes(p.ID[:])
		if parcelErr != nil {
			return nil, parcelErr
		}

		parcel, parcelErr := order.NewParcel(parcelID, p.Name, p.Variant, p.Size)
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcels = append(parcels, parcel)
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vehicleID = &vID
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Status(dto.Status),
		parcels,
		vehicleID,
		dto.DeliveryDate,
		dto.TotalPrice,
		dto.Version,
	)
}
