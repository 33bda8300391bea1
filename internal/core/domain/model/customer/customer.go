// Package customer holds the minimal customer entity the orders service
// keeps locally. Customers are created elsewhere; this service only records
// their existence (via the CustomerCreated integration event) so that order
// creation can verify the owning customer is known.
package customer

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory function.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is a local projection of a customer known to the platform.
type Customer struct {
	id            kernel.UUID
	isConstructed bool
}

// NewCustomer creates a Customer with a valid identifier.
func NewCustomer(id kernel.UUID) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}
