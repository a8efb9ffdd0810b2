package services

import (
	"fooddelivery/internal/core/domain/model/review"

	"github.com/shopspring/decimal"
)

// RatingPlaces is the precision of every published rating.
const RatingPlaces = 1

// RatingAggregator derives the published rating figures of a restaurant from review totals.
type RatingAggregator struct{}

// NewRatingAggregator creates a RatingAggregator.
func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// RestaurantRating returns the mean restaurant rating rounded to one decimal and the review
// count. No reviews yield a zero rating.
func (RatingAggregator) RestaurantRating(totals review.Totals) (decimal.Decimal, int) {
	return mean(totals.RestaurantSum, totals.Count), totals.Count
}

// Statistics returns the per-dimension means and the 1..5 star histogram.
func (RatingAggregator) Statistics(totals review.Totals) review.Statistics {
	distribution := make(map[int]int, review.MaxRating)
	for stars := review.MinRating; stars <= review.MaxRating; stars++ {
		distribution[stars] = totals.Distribution[stars-1]
	}

	return review.Statistics{
		TotalReviews:      totals.Count,
		AverageRestaurant: mean(totals.RestaurantSum, totals.Count),
		AverageFood:       mean(totals.FoodSum, totals.Count),
		AverageDelivery:   mean(totals.DeliverySum, totals.Count),
		Distribution:      distribution,
	}
}

func mean(sum, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count))).Round(RatingPlaces)
}
