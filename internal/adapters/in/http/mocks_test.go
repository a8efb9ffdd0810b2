package http

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockAddCartItemHandler struct{ mock.Mock }

func (m *MockAddCartItemHandler) Handle(ctx context.Context, cmd commands.AddCartItemCommand) (commands.CartTotals, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CartTotals), args.Error(1)
}

type MockGetCartHandler struct{ mock.Mock }

func (m *MockGetCartHandler) Handle(ctx context.Context, query queries.GetCartQuery) (queries.GetCartQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCartQueryResponse), args.Error(1)
}

type MockClearCartHandler struct{ mock.Mock }

func (m *MockClearCartHandler) Handle(ctx context.Context, cmd commands.ClearCartCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderSummary), args.Error(1)
}

type MockGetOrderDetailsHandler struct{ mock.Mock }

func (m *MockGetOrderDetailsHandler) Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderDetails), args.Error(1)
}

type MockProcessPaymentHandler struct{ mock.Mock }

func (m *MockProcessPaymentHandler) Handle(ctx context.Context, cmd commands.ProcessPaymentCommand) (commands.ProcessPaymentResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ProcessPaymentResult), args.Error(1)
}

type MockSubmitReviewHandler struct{ mock.Mock }

func (m *MockSubmitReviewHandler) Handle(ctx context.Context, cmd commands.SubmitReviewCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetRestaurantReviewsHandler struct{ mock.Mock }

func (m *MockGetRestaurantReviewsHandler) Handle(
	ctx context.Context,
	query queries.GetRestaurantReviewsQuery,
) (queries.GetRestaurantReviewsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRestaurantReviewsQueryResponse), args.Error(1)
}
