package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/review"
)

// OrderEventPublisher delivers order status changes to downstream consumers.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}

// ReviewStatsCache keeps computed review statistics per restaurant.
type ReviewStatsCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, restaurantID int64) (stats review.Statistics, ok bool, err error)
	Set(ctx context.Context, restaurantID int64, stats review.Statistics) error
	Invalidate(ctx context.Context, restaurantID int64) error
}
