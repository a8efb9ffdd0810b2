package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate *order.Order) {
	m.Called(aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	catalog    pgtest.Catalog
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	seeded, err := pgtest.SeedCatalog(suite.db)
	suite.Require().NoError(err)
	suite.catalog = seeded

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) placeOrder(id string, placedAt time.Time) *order.Order {
	o, err := order.NewOrder(order.Params{
		ID:           id,
		UserID:       suite.catalog.UserID,
		RestaurantID: suite.catalog.RestaurantID,
		AddressID:    suite.catalog.AddressID,
		Items: []order.Item{
			{MenuItemID: suite.catalog.MenuItemID, Quantity: 2, UnitPrice: decimal.NewFromInt(300), Note: "no onions"},
			{MenuItemID: suite.catalog.SecondItemID, Quantity: 1, UnitPrice: decimal.NewFromInt(120)},
		},
		DeliveryFee:              decimal.NewFromInt(40),
		MinOrderAmount:           decimal.NewFromInt(199),
		PaymentMethod:            payment.UPI,
		EstimatedDeliveryMinutes: 24,
		Note:                     "leave at the door",
		PlacedAt:                 placedAt,
	})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderItemsAndTracking() {
	placedAt := time.Date(2026, 5, 10, 13, 0, 0, 0, time.UTC)
	o := suite.placeOrder("ORDREPO000001", placedAt)

	var tracking []orderrepo.OrderTrackingDTO
	suite.Require().NoError(suite.db.Find(&tracking, "order_id = ?", o.ID()).Error)
	suite.Require().Len(tracking, 1)
	suite.Equal("placed", tracking[0].Status)
	suite.Equal("Order placed successfully", tracking[0].Notes)
	suite.Empty(o.UncommittedTracking(), "written entries are not written twice")

	var stored orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&stored, "id = ?", o.ID()).Error)
	suite.Equal("720", stored.Subtotal.String())
	suite.Equal("36", stored.TaxAmount.String())
	suite.Equal("796", stored.TotalAmount.String())
	suite.Equal("upi", stored.PaymentMethod)
	suite.Equal("pending", stored.PaymentStatus)
	suite.Nil(stored.DeliveryPartnerID)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RestoresAggregate() {
	placedAt := time.Date(2026, 5, 10, 13, 0, 0, 0, time.UTC)
	original := suite.placeOrder("ORDREPO000002", placedAt)

	loaded, err := suite.repository.Get(context.Background(), original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), loaded.ID())
	suite.Equal(order.Placed, loaded.Status())
	suite.Equal(payment.Pending, loaded.PaymentStatus())
	suite.Equal(payment.UPI, loaded.PaymentMethod())
	suite.True(original.TotalAmount().Equal(loaded.TotalAmount()))
	suite.Equal(24, loaded.EstimatedDeliveryMinutes())
	suite.Equal("leave at the door", loaded.Note())
	suite.True(placedAt.Equal(loaded.CreatedAt()))

	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal(suite.catalog.MenuItemID, items[0].MenuItemID)
	suite.Equal("no onions", items[0].Note)
	suite.True(decimal.NewFromInt(300).Equal(items[0].UnitPrice))
	suite.Empty(loaded.DomainEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUser_HidesOtherUsersOrders() {
	o := suite.placeOrder("ORDREPO000003", time.Now().UTC())

	_, err := suite.repository.GetForUser(context.Background(), o.ID(), suite.catalog.OtherUserID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(err, order.ErrOrderNotFound)

	loaded, err := suite.repository.GetForUser(context.Background(), o.ID(), suite.catalog.UserID)
	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	loaded, err := suite.repository.Get(context.Background(), "ORDMISSING")

	suite.Nil(loaded)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("ORDMISSING", notFound.ID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesStatusAndAppendsTracking() {
	ctx := context.Background()
	o := suite.placeOrder("ORDREPO000004", time.Now().UTC())

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Cancel(time.Now().UTC()))

	suite.tracker.On("TrackAggregate", loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, reloaded.Status())

	var tracking []orderrepo.OrderTrackingDTO
	suite.Require().NoError(suite.db.Order("id").Find(&tracking, "order_id = ?", o.ID()).Error)
	suite.Require().Len(tracking, 2)
	suite.Equal("cancelled", tracking[1].Status)
	suite.Equal("Order cancelled by customer", tracking[1].Notes)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_KeepsAssignedDeliveryPartner() {
	ctx := context.Background()
	o := suite.placeOrder("ORDREPO000005", time.Now().UTC())
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", o.ID()).Update("delivery_partner_id", suite.catalog.PartnerID).Error)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = loaded.ApplyPaymentOutcome(payment.Completed, time.Now().UTC())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	var stored orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&stored, "id = ?", o.ID()).Error)
	suite.Equal("confirmed", stored.Status)
	suite.Equal("completed", stored.PaymentStatus)
	suite.Require().NotNil(stored.DeliveryPartnerID)
	suite.Equal(suite.catalog.PartnerID, *stored.DeliveryPartnerID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListStaleInProgress() {
	ctx := context.Background()
	now := time.Now().UTC()
	old := now.Add(-10 * time.Minute)

	placed := suite.placeOrder("ORDREPO000010", old)
	confirmed := suite.placeOrder("ORDREPO000011", old)
	preparing := suite.placeOrder("ORDREPO000012", old)
	fresh := suite.placeOrder("ORDREPO000013", now)
	delivered := suite.placeOrder("ORDREPO000014", old)

	setStatus := func(id, status string, updatedAt time.Time) {
		suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Where("id = ?", id).
			Updates(map[string]any{"status": status, "updated_at": updatedAt}).Error)
	}
	setStatus(confirmed.ID(), "confirmed", old.Add(time.Minute))
	setStatus(preparing.ID(), "preparing", old)
	setStatus(fresh.ID(), "confirmed", now)
	setStatus(delivered.ID(), "delivered", old)

	ids, err := suite.repository.ListStaleInProgress(ctx, now.Add(-time.Minute), 10)
	suite.Require().NoError(err)
	suite.Equal([]string{preparing.ID(), confirmed.ID()}, ids)
	suite.NotContains(ids, placed.ID(), "unpaid orders are not progressed")

	limited, err := suite.repository.ListStaleInProgress(ctx, now.Add(-time.Minute), 1)
	suite.Require().NoError(err)
	suite.Equal([]string{preparing.ID()}, limited)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
