package events_test

import (
	"context"
	"testing"

	"orders/internal/core/application/messaging"
	domainevents "orders/internal/core/domain/events"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/outbox"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type fakeUnitOfWork struct {
	orderRepo    ports.OrderRepository
	customerRepo ports.CustomerRepository
	tracked      []domainevents.Source

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
func (u *fakeUnitOfWork) OutboxRepository() ports.OutboxRepository     { return noopOutboxRepo{} }

func (u *fakeUnitOfWork) TrackAggregate(_ kernel.UUID, aggregate any) {
	if source, ok := aggregate.(domainevents.Source); ok {
		u.tracked = append(u.tracked, source)
	}
}

func (u *fakeUnitOfWork) TrackedEventSources() []domainevents.Source { return u.tracked }

type noopOutboxRepo struct{}

func (noopOutboxRepo) Add(context.Context, ...*outbox.Message) error { return nil }
func (noopOutboxRepo) ClaimPending(context.Context, string, int) ([]*outbox.Message, error) {
	return nil, nil
}
func (noopOutboxRepo) Update(context.Context, *outbox.Message) error { return nil }

type fakeUoWFactory struct{ uow *fakeUnitOfWork }

func (f *fakeUoWFactory) Create() ports.UnitOfWork { return f.uow }

func newPipeline(uow *fakeUnitOfWork) *messaging.Pipeline {
	return messaging.NewPipeline(&fakeUoWFactory{uow: uow}, messaging.NewEventMapper(), zap.NewNop())
}

func newApprovedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, o.Approve())
	o.ClearEvents()
	return o
}
