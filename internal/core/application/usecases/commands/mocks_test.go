package commands_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) LockForUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockCartRepository) Get(ctx context.Context, userID int64) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetRestaurant(ctx context.Context, id int64) (catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(catalog.Restaurant)
	return r, args.Error(1)
}

func (m *MockCatalogRepository) GetMenuItem(ctx context.Context, id int64) (catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(catalog.MenuItem)
	return item, args.Error(1)
}

func (m *MockCatalogRepository) LockRestaurant(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) UpdateRating(
	ctx context.Context, restaurantID int64, rating decimal.Decimal, totalReviews int,
) error {
	return m.Called(ctx, restaurantID, rating, totalReviews).Error(0)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) GetForUser(ctx context.Context, id, userID int64) (catalog.Address, error) {
	args := m.Called(ctx, id, userID)
	a, _ := args.Get(0).(catalog.Address)
	return a, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUser(ctx context.Context, id string, userID int64) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListStaleInProgress(
	ctx context.Context, updatedBefore time.Time, limit int,
) ([]string, error) {
	args := m.Called(ctx, updatedBefore, limit)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) HasCompleted(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Exists(ctx context.Context, orderID string, userID int64) (bool, error) {
	args := m.Called(ctx, orderID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Totals(ctx context.Context, restaurantID int64) (review.Totals, error) {
	args := m.Called(ctx, restaurantID)
	totals, _ := args.Get(0).(review.Totals)
	return totals, args.Error(1)
}

type MockReviewStatsCache struct{ mock.Mock }

func (m *MockReviewStatsCache) Get(ctx context.Context, restaurantID int64) (review.Statistics, bool, error) {
	args := m.Called(ctx, restaurantID)
	stats, _ := args.Get(0).(review.Statistics)
	return stats, args.Bool(1), args.Error(2)
}

func (m *MockReviewStatsCache) Set(ctx context.Context, restaurantID int64, stats review.Statistics) error {
	return m.Called(ctx, restaurantID, stats).Error(0)
}

func (m *MockReviewStatsCache) Invalidate(ctx context.Context, restaurantID int64) error {
	return m.Called(ctx, restaurantID).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) AddressRepository() ports.AddressRepository {
	return m.Called().Get(0).(ports.AddressRepository)
}

type MockCartUoWFactory struct{ uow *MockUoW }

func (f MockCartUoWFactory) Create() commands.CartUoW { return f.uow }

type MockCheckoutUoWFactory struct{ uow *MockUoW }

func (f MockCheckoutUoWFactory) Create() commands.CheckoutUoW { return f.uow }

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockPaymentUoWFactory struct{ uow *MockUoW }

func (f MockPaymentUoWFactory) Create() commands.PaymentUoW { return f.uow }

type MockReviewUoWFactory struct{ uow *MockUoW }

func (f MockReviewUoWFactory) Create() commands.ReviewUoW { return f.uow }

var testTime = time.Date(2026, 5, 10, 13, 0, 0, 0, time.UTC)

func openRestaurant(id int64) catalog.Restaurant {
	return catalog.Restaurant{
		ID:             id,
		Name:           "Spice Route",
		DeliveryFee:    decimal.NewFromInt(40),
		MinOrderAmount: decimal.NewFromInt(199),
		IsActive:       true,
		IsOpen:         true,
	}
}

func menuItem(id, restaurantID, price int64) catalog.MenuItem {
	return catalog.MenuItem{ID: id, RestaurantID: restaurantID, Price: decimal.NewFromInt(price), IsAvailable: true}
}

func restoredOrder(status order.Status, paymentStatus payment.Status) *order.Order {
	o, err := order.RestoreOrder(
		"ORDTEST000001", 1, 2, 3,
		[]order.Item{{MenuItemID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(300)}},
		decimal.NewFromInt(600), decimal.NewFromInt(40), decimal.NewFromInt(30), decimal.NewFromInt(670),
		payment.Card, status, paymentStatus, 45, "", testTime, testTime,
	)
	if err != nil {
		panic(err)
	}
	return o
}
