// Package customerrepo persists the local customer projection.
package customerrepo

import (
	"orders/internal/core/domain/model/customer"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for the customer projection.
type CustomerDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID: aggregate.ID().Bytes(),
	}
}
