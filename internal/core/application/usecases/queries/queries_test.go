package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(orderID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		require.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var query queries.GetOrderQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		customerID := kernel.NewUUID()
		query, err := queries.NewGetCustomerOrdersQuery(customerID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		require.True(t, query.CustomerID().IsEqual(customerID))
	})

	t.Run("empty customer id", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var query queries.GetCustomerOrdersQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	})
}
