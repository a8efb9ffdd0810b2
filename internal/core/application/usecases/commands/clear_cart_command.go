package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the user's cart. Clearing an empty cart succeeds.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

func NewClearCartCommand(userID int64) (ClearCartCommand, error) {
	if userID <= 0 {
		return ClearCartCommand{}, errs.NewValueIsRequiredError("userId")
	}
	return ClearCartCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) UserID() int64 {
	return c.userID
}
