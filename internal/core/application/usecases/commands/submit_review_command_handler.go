package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"go.uber.org/zap"
)

// SubmitReviewCommandHandler stores a review and recomputes the restaurant rating in the
// same transaction. The cached review statistics of the restaurant are dropped after commit.
//
// The restaurant row is locked before the review totals are read, so concurrent reviews of
// one restaurant recompute the rating one after another. Locks are taken order first.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	aggregator services.RatingAggregator
	cache      ports.ReviewStatsCache
	logger     *zap.Logger
	now        func() time.Time
}

// NewSubmitReviewCommandHandler accepts a nil cache when statistics are not cached.
func NewSubmitReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	cache ports.ReviewStatsCache,
	logger *zap.Logger,
) SubmitReviewCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewRatingAggregator(),
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle fails with an ObjectNotFoundError for foreign orders, a ValueIsInvalidError for
// undelivered orders and a ConflictError for a second review of the same order.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	catalogRepo := uow.CatalogRepository()

	o, err := uow.OrderRepository().GetForUser(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return err
	}

	r, err := review.NewReview(o, cmd.UserID(), cmd.Ratings(), cmd.Comment(), h.now().UTC())
	if err != nil {
		return err
	}

	if err = catalogRepo.LockRestaurant(ctx, r.RestaurantID()); err != nil {
		return err
	}

	exists, err := reviewRepo.Exists(ctx, o.ID(), cmd.UserID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictErrorWithCause("review", review.ErrDuplicateReview)
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return err
	}

	totals, err := reviewRepo.Totals(ctx, r.RestaurantID())
	if err != nil {
		return err
	}

	rating, count := h.aggregator.RestaurantRating(totals)
	if err = catalogRepo.UpdateRating(ctx, r.RestaurantID(), rating, count); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidateStats(ctx, r.RestaurantID())
	return nil
}

func (h *SubmitReviewCommandHandler) invalidateStats(ctx context.Context, restaurantID int64) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, restaurantID); err != nil {
		h.logger.Warn("failed to invalidate review statistics",
			zap.Int64("restaurant_id", restaurantID), zap.Error(err))
	}
}
