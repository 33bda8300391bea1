package errs_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthorizedOrderAccessError(t *testing.T) {
	err := errs.NewUnauthorizedOrderAccessError("order-1", "user-2")

	assert.Equal(t, "order-1", err.OrderID)
	assert.Equal(t, "user-2", err.UserID)
	assert.Equal(t, "unauthorized order access: order is: order-1, user is: user-2", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestInvalidStateTransitionError(t *testing.T) {
	err := errs.NewInvalidStateTransitionError("complete", "Completed")

	assert.Equal(t, "complete", err.Operation)
	assert.Equal(t, "Completed", err.Status)
	assert.Equal(t, "invalid state transition: cannot complete order in Completed status", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestDuplicateParcelError(t *testing.T) {
	err := errs.NewDuplicateParcelError("parcel-7")

	assert.Equal(t, "parcel-7", err.ParcelID)
	assert.Equal(t, "duplicate parcel: parcel-7", err.Error())
	require.ErrorIs(t, err, errs.ErrDuplicateParcel)
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("order", "order-1", 3)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "order-1", err.ID)
	assert.Equal(t, 3, err.Version)
	assert.Equal(t,
		"concurrency conflict: param is: order, ID is: order-1, expected version is: 3",
		err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestOutboxWriteFailureError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewOutboxWriteFailureError(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "outbox write failure (cause: connection reset)", err.Error())
		require.ErrorIs(t, err, errs.ErrOutboxWriteFailure)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewOutboxWriteFailureError(nil)
		assert.Equal(t, "outbox write failure", err.Error())
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("business rejections are terminal", func(t *testing.T) {
		assert.True(t, errs.IsTerminal(errs.NewObjectNotFoundError("order", "o1")))
		assert.True(t, errs.IsTerminal(errs.NewUnauthorizedOrderAccessError("o1", "u1")))
		assert.True(t, errs.IsTerminal(errs.NewInvalidStateTransitionError("approve", "Canceled")))
		assert.True(t, errs.IsTerminal(errs.NewDuplicateParcelError("p1")))
		assert.True(t, errs.IsTerminal(errs.NewValueIsRequiredError("orderId")))
	})

	t.Run("storage failures are transient", func(t *testing.T) {
		assert.False(t, errs.IsTerminal(errs.NewOutboxWriteFailureError(errors.New("io"))))
		assert.False(t, errs.IsTerminal(errs.NewConcurrencyConflictError("order", "o1", 1)))
		assert.False(t, errs.IsTerminal(errors.New("dial tcp: connection refused")))
	})
}
