package commands_test

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	panic("not used by command handlers")
}

func (m *MockOrderRepository) GetByDeliveryPerson(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	panic("not used by command handlers")
}

func (m *MockOrderRepository) GetUnassigned(_ context.Context) ([]*order.Order, error) {
	panic("not used by command handlers")
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockPriceCatalog struct{ mock.Mock }

func (m *MockPriceCatalog) GetItem(ctx context.Context, itemID kernel.UUID) (*catalog.ClothingItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ClothingItem), args.Error(1)
}

func (m *MockPriceCatalog) ResolvePrice(
	ctx context.Context,
	itemID kernel.UUID,
	service catalog.ServiceType,
	category catalog.Category,
) (kernel.Money, error) {
	args := m.Called(ctx, itemID, service, category)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUoW satisfies every unit of work shape the command handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) PriceCatalog() ports.PriceCatalog {
	args := m.Called()
	return args.Get(0).(ports.PriceCatalog)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderCatalogUoWFactory struct{ mock.Mock }

func (m *MockOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCatalogUoW)
}

type MockOrderUserUoWFactory struct{ mock.Mock }

func (m *MockOrderUserUoWFactory) Create() commands.OrderUserUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUserUoW)
}
