// Package reviewrepo persists reviews and computes the per-restaurant sums the rating is
// derived from.
package reviewrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/review"
)

// ReviewDTO maps the reviews table. One review per (order, user).
type ReviewDTO struct {
	ID               int64     `gorm:"primaryKey"`
	UserID           int64     `gorm:"not null;uniqueIndex:idx_reviews_order_user"`
	RestaurantID     int64     `gorm:"not null;index"`
	OrderID          string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_reviews_order_user"`
	RestaurantRating int       `gorm:"not null;check:restaurant_rating BETWEEN 1 AND 5"`
	FoodRating       int       `gorm:"not null;check:food_rating BETWEEN 1 AND 5"`
	DeliveryRating   int       `gorm:"not null;check:delivery_rating BETWEEN 1 AND 5"`
	Comment          string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	ratings := r.Ratings()
	return ReviewDTO{
		ID:               r.ID(),
		UserID:           r.UserID(),
		RestaurantID:     r.RestaurantID(),
		OrderID:          r.OrderID(),
		RestaurantRating: ratings.Restaurant,
		FoodRating:       ratings.Food,
		DeliveryRating:   ratings.Delivery,
		Comment:          r.Comment(),
		CreatedAt:        r.CreatedAt(),
	}
}
