package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for carts.
type CartRepository interface {
	// LockForUser serializes cart writers of userID until the transaction ends.
	LockForUser(ctx context.Context, userID int64) error

	// Get loads every line of the user's cart. A user without lines gets an empty cart.
	Get(ctx context.Context, userID int64) (*cart.Cart, error)

	// Save makes the stored lines match the aggregate: new lines are inserted, existing
	// lines updated and lines missing from the aggregate deleted.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear deletes every line of userID.
	Clear(ctx context.Context, userID int64) error
}
