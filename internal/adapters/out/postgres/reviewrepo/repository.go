package reviewrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Exists(ctx context.Context, orderID string, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Add inserts the review. A concurrent duplicate that slipped past Exists is rejected by
// the unique index and reported as a ConflictError.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &pgErr) && pgErr.Code == uniqueViolation) {
			return errs.NewConflictErrorWithCause("review", review.ErrDuplicateReview)
		}
		return err
	}

	aggregate.AssignID(dto.ID)
	return nil
}

type totalsRow struct {
	Count         int
	RestaurantSum int
	FoodSum       int
	DeliverySum   int
	OneStar       int
	TwoStar       int
	ThreeStar     int
	FourStar      int
	FiveStar      int
}

// Totals sums every review of the restaurant. It reads all rows on each call.
func (r *GormReviewRepository) Totals(ctx context.Context, restaurantID int64) (review.Totals, error) {
	var row totalsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                         AS count,
			COALESCE(SUM(restaurant_rating), 0)              AS restaurant_sum,
			COALESCE(SUM(food_rating), 0)                    AS food_sum,
			COALESCE(SUM(delivery_rating), 0)                AS delivery_sum,
			COUNT(*) FILTER (WHERE restaurant_rating = 1)    AS one_star,
			COUNT(*) FILTER (WHERE restaurant_rating = 2)    AS two_star,
			COUNT(*) FILTER (WHERE restaurant_rating = 3)    AS three_star,
			COUNT(*) FILTER (WHERE restaurant_rating = 4)    AS four_star,
			COUNT(*) FILTER (WHERE restaurant_rating = 5)    AS five_star
		FROM reviews
		WHERE restaurant_id = ?
	`, restaurantID).Scan(&row).Error
	if err != nil {
		return review.Totals{}, err
	}

	return review.Totals{
		Count:         row.Count,
		RestaurantSum: row.RestaurantSum,
		FoodSum:       row.FoodSum,
		DeliverySum:   row.DeliverySum,
		Distribution:  [review.MaxRating]int{row.OneStar, row.TwoStar, row.ThreeStar, row.FourStar, row.FiveStar},
	}, nil
}
