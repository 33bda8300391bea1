package commands_test

import (
	"context"
	"time"

	"orders/internal/core/application/messaging"
	"orders/internal/core/domain/events"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/outbox"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetContainingParcel(ctx context.Context, parcelID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...*outbox.Message) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) ClaimPending(ctx context.Context, owner string, batchSize int) ([]*outbox.Message, error) {
	args := m.Called(ctx, owner, batchSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockParcelsClient struct{ mock.Mock }

func (m *MockParcelsClient) GetByID(ctx context.Context, id kernel.UUID) (order.Parcel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Parcel), args.Error(1)
}

type MockVehiclesClient struct{ mock.Mock }

func (m *MockVehiclesClient) GetByID(ctx context.Context, id kernel.UUID) (ports.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Vehicle), args.Error(1)
}

type MockPricingClient struct{ mock.Mock }

func (m *MockPricingClient) GetOrderPrice(
	ctx context.Context,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	deliveryDate time.Time,
) (float64, error) {
	args := m.Called(ctx, customerID, vehicleID, deliveryDate)
	return args.Get(0).(float64), args.Error(1)
}

// fakeUnitOfWork hands the handler its mocked repositories and tracks
// transaction lifecycle calls. Aggregate tracking mirrors the real unit of
// work so captured outbox writes can be asserted where a test mocks them.
type fakeUnitOfWork struct {
	orderRepo    ports.OrderRepository
	customerRepo ports.CustomerRepository
	outboxRepo   ports.OutboxRepository
	tracked      []events.Source

	committed  bool
	rolledBack bool
}

func (u *fakeUnitOfWork) Begin(context.Context) error { return nil }

func (u *fakeUnitOfWork) Commit(context.Context) error {
	u.committed = true
	return nil
}

func (u *fakeUnitOfWork) Rollback(context.Context) error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUnitOfWork) OrderRepository() ports.OrderRepository       { return u.orderRepo }
func (u *fakeUnitOfWork) CustomerRepository() ports.CustomerRepository { return u.customerRepo }
func (u *fakeUnitOfWork) OutboxRepository() ports.OutboxRepository     { return u.outboxRepo }

func (u *fakeUnitOfWork) TrackAggregate(_ kernel.UUID, aggregate any) {
	if source, ok := aggregate.(events.Source); ok {
		u.tracked = append(u.tracked, source)
	}
}

func (u *fakeUnitOfWork) TrackedEventSources() []events.Source { return u.tracked }

type fakeUoWFactory struct{ uow *fakeUnitOfWork }

func (f *fakeUoWFactory) Create() ports.UnitOfWork { return f.uow }

func newPipeline(uow *fakeUnitOfWork) *messaging.Pipeline {
	return messaging.NewPipeline(&fakeUoWFactory{uow: uow}, messaging.NewEventMapper(), zap.NewNop())
}
