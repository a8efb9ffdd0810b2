package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GetRestaurantReviewsQueryHandler struct {
	db         *gorm.DB
	reviews    ports.ReviewRepository
	cache      ports.ReviewStatsCache
	aggregator services.RatingAggregator
	logger     *zap.Logger
}

func NewGetRestaurantReviewsQueryHandler(
	db *gorm.DB,
	reviews ports.ReviewRepository,
	cache ports.ReviewStatsCache,
	logger *zap.Logger,
) (GetRestaurantReviewsQueryHandler, error) {
	if db == nil {
		return GetRestaurantReviewsQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	if reviews == nil {
		return GetRestaurantReviewsQueryHandler{}, errs.NewValueIsRequiredError("reviews")
	}
	if cache == nil {
		return GetRestaurantReviewsQueryHandler{}, errs.NewValueIsRequiredError("cache")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return GetRestaurantReviewsQueryHandler{
		db:         db,
		reviews:    reviews,
		cache:      cache,
		aggregator: services.NewRatingAggregator(),
		logger:     logger,
	}, nil
}

// Handle serves statistics from the cache when present. Cache failures fall back to
// computing the statistics from the stored reviews.
func (h GetRestaurantReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantReviewsQuery,
) (GetRestaurantReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantReviewsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var restaurant struct{ TotalReviews int }
	result := db.Raw(`SELECT total_reviews FROM restaurants WHERE id = ?`, query.restaurantID).Scan(&restaurant)
	if result.Error != nil {
		return GetRestaurantReviewsQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetRestaurantReviewsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"restaurantId", query.restaurantID, catalog.ErrRestaurantNotFound,
		)
	}

	entries, err := h.list(db, query)
	if err != nil {
		return GetRestaurantReviewsQueryResponse{}, err
	}

	stats, err := h.statistics(ctx, query.restaurantID, restaurant.TotalReviews)
	if err != nil {
		return GetRestaurantReviewsQueryResponse{}, err
	}

	return GetRestaurantReviewsQueryResponse{Reviews: entries, Statistics: stats}, nil
}

func (h GetRestaurantReviewsQueryHandler) list(db *gorm.DB, query GetRestaurantReviewsQuery) ([]ReviewEntry, error) {
	rows, err := db.Raw(`
		SELECT
			rv.id,
			rv.order_id,
			u.name,
			rv.restaurant_rating,
			rv.food_rating,
			rv.delivery_rating,
			COALESCE(rv.comment, ''),
			rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.restaurant_id = ?
		ORDER BY rv.created_at DESC, rv.id DESC
		LIMIT ? OFFSET ?
	`, query.restaurantID, query.page.Limit, query.page.Offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ReviewEntry, 0)
	for rows.Next() {
		var e ReviewEntry
		err = rows.Scan(
			&e.ID,
			&e.OrderID,
			&e.UserName,
			&e.RestaurantRating,
			&e.FoodRating,
			&e.DeliveryRating,
			&e.Comment,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// statistics treats a cached entry as stale when its review count differs from the count
// stored on the restaurant row. A reader that computed totals before a review committed may
// write its result after the invalidation; the next read replaces that entry.
func (h GetRestaurantReviewsQueryHandler) statistics(
	ctx context.Context,
	restaurantID int64,
	totalReviews int,
) (review.Statistics, error) {
	stats, ok, err := h.cache.Get(ctx, restaurantID)
	if err != nil {
		h.logger.Warn("review stats cache read failed",
			zap.Int64("restaurant_id", restaurantID), zap.Error(err))
	}
	if ok && stats.TotalReviews == totalReviews {
		return stats, nil
	}
	if ok {
		h.logger.Debug("stale review stats in cache",
			zap.Int64("restaurant_id", restaurantID),
			zap.Int("cached_reviews", stats.TotalReviews),
			zap.Int("total_reviews", totalReviews))
	}

	totals, err := h.reviews.Totals(ctx, restaurantID)
	if err != nil {
		return review.Statistics{}, err
	}
	stats = h.aggregator.Statistics(totals)

	if err = h.cache.Set(ctx, restaurantID, stats); err != nil {
		h.logger.Warn("review stats cache write failed",
			zap.Int64("restaurant_id", restaurantID), zap.Error(err))
	}

	return stats, nil
}
