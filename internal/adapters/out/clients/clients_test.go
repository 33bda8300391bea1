package clients_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orders/internal/adapters/out/clients"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParcelsClient_GetByID_ReturnsParcel(t *testing.T) {
	parcelID := kernel.NewUUID()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parcels/"+parcelID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":%q,"name":"laptop","variant":"black","size":"small"}`, parcelID.String())
	}))
	defer server.Close()

	client, err := clients.NewParcelsClient(server.URL)
	require.NoError(t, err)

	parcel, err := client.GetByID(context.Background(), parcelID)
	require.NoError(t, err)
	assert.True(t, parcel.ID().IsEqual(parcelID))
	assert.Equal(t, "laptop", parcel.Name())
}

func TestParcelsClient_GetByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := clients.NewParcelsClient(server.URL)
	require.NoError(t, err)

	_, err = client.GetByID(context.Background(), kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestParcelsClient_GetByID_ServerErrorIsNotNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := clients.NewParcelsClient(server.URL)
	require.NoError(t, err)

	_, err = client.GetByID(context.Background(), kernel.NewUUID())
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewParcelsClient_RequiresBaseURL(t *testing.T) {
	_, err := clients.NewParcelsClient("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestVehiclesClient_GetByID_ReturnsVehicle(t *testing.T) {
	vehicleID := kernel.NewUUID()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicles/"+vehicleID.String(), r.URL.Path)
		fmt.Fprintf(w, `{"id":%q,"pricePerWeight":2.5}`, vehicleID.String())
	}))
	defer server.Close()

	client, err := clients.NewVehiclesClient(server.URL)
	require.NoError(t, err)

	vehicle, err := client.GetByID(context.Background(), vehicleID)
	require.NoError(t, err)
	assert.True(t, vehicle.ID.IsEqual(vehicleID))
	assert.InDelta(t, 2.5, vehicle.PricePerWeight, 0.001)
}

func TestVehiclesClient_GetByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := clients.NewVehiclesClient(server.URL)
	require.NoError(t, err)

	_, err = client.GetByID(context.Background(), kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPricingClient_GetOrderPrice_SendsAllParameters(t *testing.T) {
	customerID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	deliveryDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/price", r.URL.Path)
		assert.Equal(t, customerID.String(), r.URL.Query().Get("customerId"))
		assert.Equal(t, vehicleID.String(), r.URL.Query().Get("vehicleId"))
		assert.Equal(t, deliveryDate.Format(time.RFC3339), r.URL.Query().Get("deliveryDate"))
		fmt.Fprint(w, `{"price":125.5}`)
	}))
	defer server.Close()

	client, err := clients.NewPricingClient(server.URL)
	require.NoError(t, err)

	price, err := client.GetOrderPrice(context.Background(), customerID, vehicleID, deliveryDate)
	require.NoError(t, err)
	assert.InDelta(t, 125.5, price, 0.001)
}

func TestPricingClient_GetOrderPrice_RejectsNegativePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"price":-1}`)
	}))
	defer server.Close()

	client, err := clients.NewPricingClient(server.URL)
	require.NoError(t, err)

	_, err = client.GetOrderPrice(context.Background(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
