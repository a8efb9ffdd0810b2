package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// StatusChanged is raised whenever an order enters a new status, including creation.
type StatusChanged struct {
	EventID       uuid.UUID
	OrderID       string
	UserID        int64
	RestaurantID  int64
	Status        Status
	PaymentStatus payment.Status
	OccurredAt    time.Time
}

// TrackingEntry is one row of the append-only status log.
type TrackingEntry struct {
	Status    Status
	Notes     string
	CreatedAt time.Time
}
