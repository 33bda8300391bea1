package order

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Parcel is a value object describing one package within an order.
// Equality and identity both derive solely from the parcel id: two parcels
// with the same id are interchangeable regardless of name, variant, or size,
// which gives the order's parcel collection set semantics.
type Parcel struct {
	id      kernel.UUID
	name    string
	variant string
	size    string
}

// NewParcel creates a Parcel with a valid id and a non-empty name.
// Variant and size are descriptive and may be empty.
func NewParcel(id kernel.UUID, name, variant, size string) (Parcel, error) {
	if err := id.Validate(); err != nil {
		return Parcel{}, err
	}
	if name == "" {
		return Parcel{}, errs.NewValueIsRequiredError("parcel name")
	}

	return Parcel{
		id:      id,
		name:    name,
		variant: variant,
		size:    size,
	}, nil
}

// ID returns the parcel's unique identifier.
func (p Parcel) ID() kernel.UUID {
	return p.id
}

// Name returns the parcel's display name.
func (p Parcel) Name() string {
	return p.name
}

// Variant returns the parcel's variant.
func (p Parcel) Variant() string {
	return p.variant
}

// Size returns the parcel's size.
func (p Parcel) Size() string {
	return p.size
}

// IsEqual compares two parcels by id only.
func (p Parcel) IsEqual(other Parcel) bool {
	return p.id.IsEqual(other.id)
}
