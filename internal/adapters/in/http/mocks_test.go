package http_test

import (
	"context"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListOrdersQuery,
) ([]queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.ListOrdersQueryResponse)
	return orders, args.Error(1)
}

type MockListItemsHandler struct{ mock.Mock }

func (m *MockListItemsHandler) Handle(
	ctx context.Context,
	query queries.ListItemsQuery,
) ([]queries.ListItemsQueryResponse, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]queries.ListItemsQueryResponse)
	return items, args.Error(1)
}

type MockCreateItemHandler struct{ mock.Mock }

func (m *MockCreateItemHandler) Handle(ctx context.Context, cmd commands.CreateItemCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockUpdateItemHandler struct{ mock.Mock }

func (m *MockUpdateItemHandler) Handle(ctx context.Context, cmd commands.UpdateItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteItemHandler struct{ mock.Mock }

func (m *MockDeleteItemHandler) Handle(ctx context.Context, cmd commands.DeleteItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mocks struct {
	createOrder  *MockCreateOrderHandler
	changeStatus *MockChangeOrderStatusHandler
	listOrders   *MockListOrdersHandler
	listItems    *MockListItemsHandler
	createItem   *MockCreateItemHandler
	updateItem   *MockUpdateItemHandler
	deleteItem   *MockDeleteItemHandler
}
