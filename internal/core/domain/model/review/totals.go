package review

import "github.com/shopspring/decimal"

// Totals are the raw sums over every review of a restaurant.
type Totals struct {
	Count         int
	RestaurantSum int
	FoodSum       int
	DeliverySum   int

	// Distribution[i] counts reviews whose restaurant rating is i+1.
	Distribution [MaxRating]int
}

// Statistics is the public summary of a restaurant's reviews.
type Statistics struct {
	TotalReviews      int
	AverageRestaurant decimal.Decimal
	AverageFood       decimal.Decimal
	AverageDelivery   decimal.Decimal
	// Distribution maps a star value (1..5) to its number of reviews.
	Distribution map[int]int
}
