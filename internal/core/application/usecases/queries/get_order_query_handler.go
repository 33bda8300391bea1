package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Soft-deleted orders are not visible on the read side.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist or was deleted.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			parcels,
			vehicle_id,
			delivery_date,
			total_price
		FROM orders
		WHERE id = ? AND status != ?
	`, query.OrderID().Bytes(), order.Deleted).Row()

	response, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	return response, nil
}

// parcelRow mirrors the JSON shape parcels are stored in.
type parcelRow struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Variant string    `json:"variant"`
	Size    string    `json:"size"`
}

func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id           uuid.UUID
		customerID   uuid.UUID
		status       order.Status
		parcelsRaw   []byte
		vehicleID    uuid.NullUUID
		deliveryDate sql.NullTime
		totalPrice   sql.NullFloat64
	)

	if err := scan(&id, &customerID, &status, &parcelsRaw, &vehicleID, &deliveryDate, &totalPrice); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	response := OrderResponse{
		ID:         orderID,
		CustomerID: ownerID,
		Status:     status.String(),
	}

	if len(parcelsRaw) > 0 {
		var rows []parcelRow
		if err := json.Unmarshal(parcelsRaw, &rows); err != nil {
			return OrderResponse{}, err
		}
		for _, p := range rows {
			parcelID, idErr := kernel.UUIDFromBytes(p.ID[:])
			if idErr != nil {
				return OrderResponse{}, idErr
			}
			response.Parcels = append(response.Parcels, ParcelResponse{
				ID:      parcelID,
				Name:    p.Name,
				Variant: p.Variant,
				Size:    p.Size,
			})
		}
	}

	if vehicleID.Valid {
		vid, idErr := kernel.UUIDFromBytes(vehicleID.UUID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		response.VehicleID = &vid
	}
	if deliveryDate.Valid {
		date := deliveryDate.Time.UTC()
		response.DeliveryDate = &date
	}
	if totalPrice.Valid {
		price := totalPrice.Float64
		response.TotalPrice = &price
	}

	return response, nil
}
