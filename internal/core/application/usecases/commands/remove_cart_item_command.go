package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand deletes one of the user's cart lines.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID int64
	itemID int64

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(userID, itemID int64) (RemoveCartItemCommand, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if itemID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("itemId"))
	}
	if err := errors.Join(errList...); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{userID: userID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) UserID() int64 { return c.userID }
func (c RemoveCartItemCommand) ItemID() int64 { return c.itemID }
