package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand asks to put quantity units of a menu item into the user's cart.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(userID, restaurantID, menuItemID, 2, "extra spicy")
//	if err != nil {
//	    return err
//	}
//	totals, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID       int64
	restaurantID int64
	menuItemID   int64
	quantity     int
	note         string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand validates ids and a quantity in [1, 10].
func NewAddCartItemCommand(
	userID, restaurantID, menuItemID int64,
	quantity int,
	note string,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) UserID() int64 { return c.userID }
func (c AddCartItemCommand) RestaurantID() int64 { return c.restaurantID }
func (c AddCartItemCommand) MenuItemID() int64 { return c.menuItemID }
func (c AddCartItemCommand) Quantity() int { return c.quantity }
func (c AddCartItemCommand) Note() string { return c.note }

func (c *AddCartItemCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurantId")
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return errs.NewValueIsRequiredError("itemId")
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
