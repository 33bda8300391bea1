package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/correlation"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := correlation.WithIdentity(t.Context(), correlation.Identity{UserID: "ops", IsAdmin: true})
	existing := newOrder(t, kernel.NewUUID())
	vehicleID := kernel.NewUUID()
	deliveryDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewAssignVehicleCommand(existing.ID(), vehicleID, deliveryDate)
	require.NoError(t, err)

	vehiclesClient := new(MockVehiclesClient)
	vehiclesClient.On("GetByID", mock.Anything, vehicleID).
		Return(ports.Vehicle{ID: vehicleID, PricePerWeight: 2.5}, nil).Once()

	pricingClient := new(MockPricingClient)
	pricingClient.On("GetOrderPrice", mock.Anything, existing.CustomerID(), vehicleID, deliveryDate).
		Return(125.0, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()

	uow := &fakeUnitOfWork{orderRepo: orderRepo}
	h := commands.NewAssignVehicleCommandHandler(newPipeline(uow), vehiclesClient, pricingClient)

	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, existing.Vehicle())
	require.True(t, existing.Vehicle().IsEqual(vehicleID))
	require.NotNil(t, existing.TotalPrice())
	require.InDelta(t, 125.0, *existing.TotalPrice(), 0.001)
	require.NotNil(t, existing.DeliveryDate())
	require.True(t, existing.DeliveryDate().Equal(deliveryDate))
	vehiclesClient.AssertExpectations(t)
	pricingClient.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAssignVehicleCommandHandler_Handle_NonAdminRejected(t *testing.T) {
	existing := newOrder(t, kernel.NewUUID())
	ctx := correlation.WithIdentity(t.Context(), correlation.Identity{UserID: existing.CustomerID().String()})

	cmd, err := commands.NewAssignVehicleCommand(existing.ID(), kernel.NewUUID(), time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)

	vehiclesClient := new(MockVehiclesClient)
	h := commands.NewAssignVehicleCommandHandler(newPipeline(&fakeUnitOfWork{}), vehiclesClient, new(MockPricingClient))

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	vehiclesClient.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAssignVehicleCommandHandler_Handle_UnknownVehicle(t *testing.T) {
	ctx := t.Context()
	existing := newOrder(t, kernel.NewUUID())
	vehicleID := kernel.NewUUID()

	cmd, err := commands.NewAssignVehicleCommand(existing.ID(), vehicleID, time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)

	vehiclesClient := new(MockVehiclesClient)
	vehiclesClient.On("GetByID", mock.Anything, vehicleID).
		Return(ports.Vehicle{}, errs.NewObjectNotFoundError("vehicle", vehicleID.String())).Once()

	orderRepo := new(MockOrderRepository)
	uow := &fakeUnitOfWork{orderRepo: orderRepo}
	h := commands.NewAssignVehicleCommandHandler(newPipeline(uow), vehiclesClient, new(MockPricingClient))

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestNewAssignVehicleCommand_ZeroDeliveryDate(t *testing.T) {
	_, err := commands.NewAssignVehicleCommand(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	require.ErrorIs(t, err, commands.ErrDeliveryDateIsRequired)
}
