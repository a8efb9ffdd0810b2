package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/reviewrepo"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ReviewRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reviewrepo.GormReviewRepository
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = reviewrepo.NewGormReviewRepository(db)
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *ReviewRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReviewRepositoryIntegrationTestSuite) newReview(orderID string, userID int64, ratings review.Ratings) *review.Review {
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		orderID, userID, 7, 1,
		[]order.Item{{MenuItemID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(300)}},
		decimal.NewFromInt(300), decimal.NewFromInt(40), decimal.NewFromInt(15), decimal.NewFromInt(355),
		payment.Cash, order.Delivered, payment.Completed, 30, "", now, now,
	)
	suite.Require().NoError(err)

	r, err := review.NewReview(o, userID, ratings, "", now)
	suite.Require().NoError(err)
	return r
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAddAndExists() {
	ctx := context.Background()
	r := suite.newReview("ORDREV000001", 1, review.Ratings{Restaurant: 5, Food: 4, Delivery: 3})

	exists, err := suite.repository.Exists(ctx, "ORDREV000001", 1)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(suite.repository.Add(ctx, r))
	suite.NotZero(r.ID())

	exists, err = suite.repository.Exists(ctx, "ORDREV000001", 1)
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_DuplicateIsConflict() {
	ctx := context.Background()
	ratings := review.Ratings{Restaurant: 5, Food: 5, Delivery: 5}
	suite.Require().NoError(suite.repository.Add(ctx, suite.newReview("ORDREV000002", 1, ratings)))

	err := suite.repository.Add(ctx, suite.newReview("ORDREV000002", 1, ratings))
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().ErrorIs(err, review.ErrDuplicateReview)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestTotals() {
	ctx := context.Background()

	empty, err := suite.repository.Totals(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(review.Totals{}, empty)

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newReview("ORDREV000010", 1, review.Ratings{Restaurant: 5, Food: 4, Delivery: 3})))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newReview("ORDREV000011", 1, review.Ratings{Restaurant: 4, Food: 5, Delivery: 4})))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newReview("ORDREV000012", 2, review.Ratings{Restaurant: 4, Food: 5, Delivery: 4})))

	totals, err := suite.repository.Totals(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(3, totals.Count)
	suite.Equal(13, totals.RestaurantSum)
	suite.Equal(14, totals.FoodSum)
	suite.Equal(11, totals.DeliverySum)
	suite.Equal([review.MaxRating]int{0, 0, 0, 2, 1}, totals.Distribution)
}

func TestReviewRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryIntegrationTestSuite))
}
