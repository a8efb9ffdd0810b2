package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
)

// PaymentRepository stores payment attempts.
type PaymentRepository interface {
	Add(ctx context.Context, attempt *payment.Payment) error

	// HasCompleted reports whether orderID already has a completed attempt.
	HasCompleted(ctx context.Context, orderID string) (bool, error)
}

// ReviewRepository stores reviews and sums their ratings.
type ReviewRepository interface {
	Exists(ctx context.Context, orderID string, userID int64) (bool, error)

	// Add persists a review. A concurrent duplicate is reported as a ConflictError.
	Add(ctx context.Context, aggregate *review.Review) error

	Totals(ctx context.Context, restaurantID int64) (review.Totals, error)
}
