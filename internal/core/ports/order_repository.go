// Package ports defines the contracts between the order workflow core and its
// infrastructure: repositories, the unit of work, the event publisher and caches.
package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its items and pending tracking entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable fields of an order and appends its pending tracking entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order and locks its row until the transaction ends.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetForUser is Get restricted to the orders of userID. An order of another user is
	// reported as not found.
	GetForUser(ctx context.Context, id string, userID int64) (*order.Order, error)

	// ListStaleInProgress returns the ids of orders in one of the InProgress statuses whose
	// last change happened before updatedBefore, oldest first.
	ListStaleInProgress(ctx context.Context, updatedBefore time.Time, limit int) ([]string, error)
}
