// Package redis caches computed review statistics per restaurant.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/review"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const DefaultStatsTTL = 10 * time.Minute

// statsEntry is the JSON form of review.Statistics.
type statsEntry struct {
	TotalReviews      int             `json:"totalReviews"`
	AverageRestaurant decimal.Decimal `json:"averageRestaurant"`
	AverageFood       decimal.Decimal `json:"averageFood"`
	AverageDelivery   decimal.Decimal `json:"averageDelivery"`
	Distribution      map[int]int     `json:"distribution"`
}

type ReviewStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReviewStatsCache(client *redis.Client, ttl time.Duration) *ReviewStatsCache {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &ReviewStatsCache{client: client, ttl: ttl}
}

func statsKey(restaurantID int64) string {
	return fmt.Sprintf("restaurant:%d:review_stats", restaurantID)
}

func (c *ReviewStatsCache) Get(ctx context.Context, restaurantID int64) (review.Statistics, bool, error) {
	raw, err := c.client.Get(ctx, statsKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return review.Statistics{}, false, nil
	}
	if err != nil {
		return review.Statistics{}, false, err
	}

	var entry statsEntry
	if err = json.Unmarshal(raw, &entry); err != nil {
		return review.Statistics{}, false, fmt.Errorf("decode %s: %w", statsKey(restaurantID), err)
	}

	return review.Statistics{
		TotalReviews:      entry.TotalReviews,
		AverageRestaurant: entry.AverageRestaurant,
		AverageFood:       entry.AverageFood,
		AverageDelivery:   entry.AverageDelivery,
		Distribution:      entry.Distribution,
	}, true, nil
}

func (c *ReviewStatsCache) Set(ctx context.Context, restaurantID int64, stats review.Statistics) error {
	raw, err := json.Marshal(statsEntry{
		TotalReviews:      stats.TotalReviews,
		AverageRestaurant: stats.AverageRestaurant,
		AverageFood:       stats.AverageFood,
		AverageDelivery:   stats.AverageDelivery,
		Distribution:      stats.Distribution,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(restaurantID), raw, c.ttl).Err()
}

// Invalidate is a no-op for a restaurant without cached statistics.
func (c *ReviewStatsCache) Invalidate(ctx context.Context, restaurantID int64) error {
	return c.client.Del(ctx, statsKey(restaurantID)).Err()
}
