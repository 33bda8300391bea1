package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	o.ClearEvents() // discard the creation event so tests start from a clean sequence
	return o
}

func newTestParcel(t *testing.T) order.Parcel {
	t.Helper()

	p, err := order.NewParcel(kernel.NewUUID(), "laptop", "black", "small")
	require.NoError(t, err)
	return p
}

func approvedOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newTestOrder(t)
	require.NoError(t, o.Approve())
	o.ClearEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in New status with creation event", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.New, o.Status())
		assert.Empty(t, o.Parcels())
		assert.Nil(t, o.Vehicle())
		assert.Nil(t, o.DeliveryDate())
		assert.Nil(t, o.TotalPrice())

		pending := o.PendingEvents()
		require.Len(t, pending, 1)
		created, ok := pending[0].(order.CreatedEvent)
		require.True(t, ok)
		assert.True(t, created.OrderID.IsEqual(id))
		assert.True(t, created.CustomerID.IsEqual(customerID))
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidCustomer kernel.UUID

		o, err := order.NewOrder(kernel.NewUUID(), invalidCustomer)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer ID")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore without recording events", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()
		date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		price := 49.99

		o, err := order.RestoreOrder(id, customerID, order.Approved, nil, &vehicleID, &date, &price, 3)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Approved, o.Status())
		assert.Equal(t, 3, o.Version())
		assert.True(t, o.Vehicle().IsEqual(vehicleID))
		assert.Equal(t, date, *o.DeliveryDate())
		assert.InEpsilon(t, price, *o.TotalPrice(), 1e-9)
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, nil, nil, nil, nil, 0)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddParcel(t *testing.T) {
	t.Run("appends exactly one event and the parcel", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestParcel(t)

		require.NoError(t, o.AddParcel(p))

		require.Len(t, o.Parcels(), 1)
		assert.True(t, o.HasParcel(p.ID()))

		pending := o.PendingEvents()
		require.Len(t, pending, 1)
		added, ok := pending[0].(order.ParcelAddedEvent)
		require.True(t, ok)
		assert.True(t, added.Parcel.IsEqual(p))
	})

	t.Run("rejects duplicate parcel id and mutates nothing", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestParcel(t)
		require.NoError(t, o.AddParcel(p))
		o.ClearEvents()

		// Same id, different descriptive fields: still the same parcel.
		duplicate, err := order.NewParcel(p.ID(), "other name", "red", "large")
		require.NoError(t, err)

		err = o.AddParcel(duplicate)

		require.ErrorIs(t, err, errs.ErrDuplicateParcel)
		assert.Len(t, o.Parcels(), 1)
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("rejects parcel on non-modifiable order", func(t *testing.T) {
		o := approvedOrder(t)
		require.NoError(t, o.Cancel("customer request"))
		o.ClearEvents()

		err := o.AddParcel(newTestParcel(t))

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Empty(t, o.Parcels())
		assert.Empty(t, o.PendingEvents())
		assert.Equal(t, order.Canceled, o.Status())
	})
}

func TestOrder_DeleteParcel(t *testing.T) {
	t.Run("removes the parcel and records one event", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestParcel(t)
		require.NoError(t, o.AddParcel(p))
		o.ClearEvents()

		require.NoError(t, o.DeleteParcel(p.ID()))

		assert.Empty(t, o.Parcels())
		pending := o.PendingEvents()
		require.Len(t, pending, 1)
		deleted, ok := pending[0].(order.ParcelDeletedEvent)
		require.True(t, ok)
		assert.True(t, deleted.ParcelID.IsEqual(p.ID()))
	})

	t.Run("unknown parcel is NotFound", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.DeleteParcel(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("rejected on non-modifiable order", func(t *testing.T) {
		o := newTestOrder(t)
		p := newTestParcel(t)
		require.NoError(t, o.AddParcel(p))
		require.NoError(t, o.Delete())
		o.ClearEvents()

		err := o.DeleteParcel(p.ID())

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Len(t, o.Parcels(), 1)
		assert.Empty(t, o.PendingEvents())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("approve records one event", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Approve())

		assert.Equal(t, order.Approved, o.Status())
		require.Len(t, o.PendingEvents(), 1)
		assert.Equal(t, "order_approved", o.PendingEvents()[0].EventName())
	})

	t.Run("cancel records reason", func(t *testing.T) {
		o := approvedOrder(t)

		require.NoError(t, o.Cancel("delivery failed"))

		assert.Equal(t, order.Canceled, o.Status())
		pending := o.PendingEvents()
		require.Len(t, pending, 1)
		canceled, ok := pending[0].(order.CanceledEvent)
		require.True(t, ok)
		assert.Equal(t, "delivery failed", canceled.Reason)
	})

	t.Run("complete from Approved", func(t *testing.T) {
		o := approvedOrder(t)

		require.NoError(t, o.Complete())

		assert.Equal(t, order.Completed, o.Status())
		require.Len(t, o.PendingEvents(), 1)
		assert.Equal(t, "order_completed", o.PendingEvents()[0].EventName())
	})

	t.Run("complete on already completed order is rejected without changes", func(t *testing.T) {
		o := approvedOrder(t)
		require.NoError(t, o.Complete())
		o.ClearEvents()

		err := o.Complete()

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Completed, o.Status())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("delete from New", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Delete())

		assert.Equal(t, order.Deleted, o.Status())
		require.Len(t, o.PendingEvents(), 1)
		assert.Equal(t, "order_deleted", o.PendingEvents()[0].EventName())
	})

	t.Run("delete on Completed is rejected", func(t *testing.T) {
		o := approvedOrder(t)
		require.NoError(t, o.Complete())
		o.ClearEvents()

		require.ErrorIs(t, o.Delete(), errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Completed, o.Status())
		assert.Empty(t, o.PendingEvents())
	})
}

func TestOrder_AssignVehicle(t *testing.T) {
	t.Run("sets vehicle, date and price and records two events in order", func(t *testing.T) {
		o := approvedOrder(t)
		vehicleID := kernel.NewUUID()
		date := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		require.NoError(t, o.AssignVehicle(vehicleID, date, 120.50))

		assert.True(t, o.Vehicle().IsEqual(vehicleID))
		assert.Equal(t, date, *o.DeliveryDate())
		assert.InEpsilon(t, 120.50, *o.TotalPrice(), 1e-9)

		pending := o.PendingEvents()
		require.Len(t, pending, 2)
		assert.Equal(t, "vehicle_assigned", pending[0].EventName())
		assert.Equal(t, "delivery_date_set", pending[1].EventName())
	})

	t.Run("rejected on non-modifiable order", func(t *testing.T) {
		o := approvedOrder(t)
		require.NoError(t, o.Complete())
		o.ClearEvents()

		err := o.AssignVehicle(kernel.NewUUID(), time.Now(), 10)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Nil(t, o.Vehicle())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("rejects negative price without mutation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignVehicle(kernel.NewUUID(), time.Now(), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.Vehicle())
		assert.Empty(t, o.PendingEvents())
	})
}

func TestOrder_EventAccumulation(t *testing.T) {
	o := newTestOrder(t)
	p1 := newTestParcel(t)
	p2 := newTestParcel(t)

	require.NoError(t, o.AddParcel(p1))
	require.NoError(t, o.AddParcel(p2))
	require.NoError(t, o.Approve())

	pending := o.PendingEvents()
	require.Len(t, pending, 3)
	assert.Equal(t, "parcel_added", pending[0].EventName())
	assert.Equal(t, "parcel_added", pending[1].EventName())
	assert.Equal(t, "order_approved", pending[2].EventName())

	o.ClearEvents()
	assert.Empty(t, o.PendingEvents())
}

func TestParcel(t *testing.T) {
	t.Run("equality derives from id only", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := order.NewParcel(id, "laptop", "black", "small")
		require.NoError(t, err)
		b, err := order.NewParcel(id, "phone", "white", "tiny")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("requires a valid id", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := order.NewParcel(invalidID, "laptop", "black", "small")
		require.Error(t, err)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := order.NewParcel(kernel.NewUUID(), "", "black", "small")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
