package cart

import (
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCrossRestaurantConflict is the cause reported when a cart already holds items of another restaurant.
	ErrCrossRestaurantConflict = errors.New(
		"You can only order from one restaurant at a time. Please clear your cart first.")
	// ErrEmptyCart is the cause reported when checkout finds no lines.
	ErrEmptyCart = errors.New("Cart is empty")
	// ErrCartItemNotFound is the cause reported when a line does not exist in the caller's cart.
	ErrCartItemNotFound = errors.New("Cart item not found")
)

// Cart is the aggregate of all cart lines of one user.
type Cart struct {
	userID int64
	items  []*Item
}

// NewCart creates an empty cart.
func NewCart(userID int64) (*Cart, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("userId")
	}
	return &Cart{userID: userID, items: make([]*Item, 0)}, nil
}

// RestoreCart rebuilds a cart from persisted lines.
func RestoreCart(userID int64, items []*Item) *Cart {
	if items == nil {
		items = make([]*Item, 0)
	}
	return &Cart{userID: userID, items: items}
}

// UserID returns the owner of the cart.
func (c *Cart) UserID() int64 {
	return c.userID
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []*Item {
	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// RestaurantID returns the restaurant of the cart; ok is false for an empty cart.
func (c *Cart) RestaurantID() (id int64, ok bool) {
	if c.IsEmpty() {
		return 0, false
	}
	return c.items[0].restaurantID, true
}

// Subtotal returns Σ unit price × quantity.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// ItemCount returns the total quantity across lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.quantity
	}
	return count
}

// Add puts quantity units of menuItem into the cart.
//
// The restaurant must accept orders and the menu item must be an available dish of that
// restaurant. A non-empty cart of another restaurant is rejected with a ConflictError.
// An existing line for the same menu item gets the quantities summed (no upper bound),
// its note replaced and its price refreshed to the current catalog price.
func (c *Cart) Add(restaurant catalog.Restaurant, menuItem catalog.MenuItem, quantity int, note string) error {
	if err := validateIDs(restaurant.ID, menuItem.ID); err != nil {
		return err
	}
	if quantity < MinQuantity {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, MinQuantity, MaxQuantity, ErrInvalidQuantity)
	}
	if err := restaurant.EnsureOrderable(); err != nil {
		return err
	}
	if err := menuItem.EnsureOrderableFrom(restaurant.ID); err != nil {
		return err
	}
	if current, ok := c.RestaurantID(); ok && current != restaurant.ID {
		return errs.NewConflictErrorWithCause("cart", ErrCrossRestaurantConflict)
	}

	if existing := c.findByMenuItem(menuItem.ID); existing != nil {
		existing.quantity += quantity
		existing.note = note
		existing.unitPrice = menuItem.Price
		return nil
	}

	c.items = append(c.items, &Item{
		restaurantID: restaurant.ID,
		menuItemID:   menuItem.ID,
		quantity:     quantity,
		note:         note,
		unitPrice:    menuItem.Price,
	})
	return nil
}

// UpdateQuantity sets the quantity of the line itemID.
func (c *Cart) UpdateQuantity(itemID int64, quantity int) error {
	item, err := c.get(itemID)
	if err != nil {
		return err
	}
	return item.setQuantity(quantity)
}

// Remove deletes the line itemID.
func (c *Cart) Remove(itemID int64) error {
	for i, item := range c.items {
		if item.id == itemID && itemID != 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundErrorWithCause("itemId", itemID, ErrCartItemNotFound)
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.items = make([]*Item, 0)
}

func (c *Cart) get(itemID int64) (*Item, error) {
	for _, item := range c.items {
		if item.id == itemID && itemID != 0 {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("itemId", itemID, ErrCartItemNotFound)
}

func (c *Cart) findByMenuItem(menuItemID int64) *Item {
	for _, item := range c.items {
		if item.menuItemID == menuItemID {
			return item
		}
	}
	return nil
}
