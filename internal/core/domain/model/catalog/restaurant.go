package catalog

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultPreparationMinutes is used when a restaurant does not report its average preparation time.
const DefaultPreparationMinutes = 30

var (
	// ErrRestaurantNotFound is the cause reported when a restaurant id is unknown.
	ErrRestaurantNotFound = errors.New("Restaurant not found")
	// ErrMenuItemNotFound is the cause reported when a menu item is unknown or belongs to another restaurant.
	ErrMenuItemNotFound = errors.New("Menu item not found")
	// ErrAddressNotFound is the cause reported when an address is unknown or owned by another user.
	ErrAddressNotFound = errors.New("Address not found")
	// ErrRestaurantClosed is the cause reported when an inactive or closed restaurant is ordered from.
	ErrRestaurantClosed = errors.New("Restaurant is currently closed")
	// ErrMenuItemUnavailable is the cause reported when a menu item is not orderable right now.
	ErrMenuItemUnavailable = errors.New("Menu item is currently unavailable")
)

// Restaurant is a snapshot of a catalog restaurant.
type Restaurant struct {
	ID                 int64
	Name               string
	Phone              string
	ImageURL           string
	DeliveryFee        decimal.Decimal
	MinOrderAmount     decimal.Decimal
	PreparationMinutes int
	IsActive           bool
	IsOpen             bool
	// Location is nil when the restaurant has no coordinates on file.
	Location *kernel.GeoPoint
}

// EnsureOrderable returns a ConflictError when the restaurant does not accept orders.
func (r Restaurant) EnsureOrderable() error {
	if !r.IsActive || !r.IsOpen {
		return errs.NewConflictErrorWithCause("restaurant", ErrRestaurantClosed)
	}
	return nil
}

// PrepMinutes returns the average preparation time, falling back to DefaultPreparationMinutes.
func (r Restaurant) PrepMinutes() int {
	if r.PreparationMinutes <= 0 {
		return DefaultPreparationMinutes
	}
	return r.PreparationMinutes
}

// MenuItem is a snapshot of a dish offered by a restaurant.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Price        decimal.Decimal
	IsAvailable  bool
}

// EnsureOrderableFrom checks that the item belongs to restaurantID and is available.
// An item of another restaurant is reported as not found.
func (m MenuItem) EnsureOrderableFrom(restaurantID int64) error {
	if m.RestaurantID != restaurantID {
		return errs.NewObjectNotFoundErrorWithCause("menuItemId", m.ID, ErrMenuItemNotFound)
	}
	if !m.IsAvailable {
		return errs.NewConflictErrorWithCause("menuItem", ErrMenuItemUnavailable)
	}
	return nil
}

// Address is a delivery address owned by a user.
type Address struct {
	ID      int64
	UserID  int64
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
	// Location is nil when the address was saved without coordinates.
	Location *kernel.GeoPoint
}
