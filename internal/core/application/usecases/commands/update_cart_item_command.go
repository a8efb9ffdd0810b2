package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets the quantity of one of the user's cart lines.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	userID   int64
	itemID   int64
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand rejects quantities outside [1, 10] with a ValueIsOutOfRangeError.
func NewUpdateCartItemCommand(userID, itemID int64, quantity int) (UpdateCartItemCommand, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if itemID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("itemId"))
	}
	errList = append(errList, cart.ValidateQuantity(quantity))

	if err := errors.Join(errList...); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return UpdateCartItemCommand{
		userID:   userID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) UserID() int64 { return c.userID }
func (c UpdateCartItemCommand) ItemID() int64 { return c.itemID }
func (c UpdateCartItemCommand) Quantity() int { return c.quantity }
