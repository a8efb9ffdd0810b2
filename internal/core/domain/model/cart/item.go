package cart

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MinQuantity is the smallest quantity a line may be set to.
	MinQuantity = 1
	// MaxQuantity is the largest quantity a line may be set to.
	MaxQuantity = 10
)

// ErrInvalidQuantity is the cause reported for quantities outside [MinQuantity, MaxQuantity].
var ErrInvalidQuantity = errors.New("Quantity must be between 1 and 10")

// Item is one line of a cart. An id of zero marks a line that has not been persisted yet.
type Item struct {
	id           int64
	restaurantID int64
	menuItemID   int64
	quantity     int
	note         string
	unitPrice    decimal.Decimal
}

// RestoreItem rebuilds a persisted cart line.
func RestoreItem(id, restaurantID, menuItemID int64, quantity int, note string, unitPrice decimal.Decimal) *Item {
	return &Item{
		id:           id,
		restaurantID: restaurantID,
		menuItemID:   menuItemID,
		quantity:     quantity,
		note:         note,
		unitPrice:    unitPrice,
	}
}

func (i *Item) ID() int64 { return i.id }
func (i *Item) RestaurantID() int64 { return i.restaurantID }
func (i *Item) MenuItemID() int64 { return i.menuItemID }
func (i *Item) Quantity() int { return i.quantity }
func (i *Item) Note() string { return i.note }
func (i *Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// LineTotal returns unit price × quantity.
func (i *Item) LineTotal() decimal.Decimal {
	return kernel.LineTotal(i.unitPrice, i.quantity)
}

// IsNew reports whether the line still has to be inserted.
func (i *Item) IsNew() bool {
	return i.id == 0
}

// ValidateQuantity checks the explicit quantity bounds.
func ValidateQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, MinQuantity, MaxQuantity, ErrInvalidQuantity)
	}
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func validateIDs(restaurantID, menuItemID int64) error {
	var errList []error
	if restaurantID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("restaurantId"))
	}
	if menuItemID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("menuItemId"))
	}
	return errors.Join(errList...)
}
