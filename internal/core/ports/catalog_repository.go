package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
)

// CatalogRepository reads the restaurant catalog. The only write is the derived rating.
type CatalogRepository interface {
	GetRestaurant(ctx context.Context, id int64) (catalog.Restaurant, error)
	GetMenuItem(ctx context.Context, id int64) (catalog.MenuItem, error)

	// LockRestaurant holds the restaurant row until the transaction ends.
	LockRestaurant(ctx context.Context, id int64) error

	// UpdateRating stores the derived rating and review count of a restaurant.
	UpdateRating(ctx context.Context, restaurantID int64, rating decimal.Decimal, totalReviews int) error
}

// AddressRepository reads the address book.
type AddressRepository interface {
	// GetForUser returns an ObjectNotFoundError if the address does not exist or belongs
	// to another user.
	GetForUser(ctx context.Context, id, userID int64) (catalog.Address, error)
}
