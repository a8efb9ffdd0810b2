package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand asks to cancel one of the user's orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	orderID string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(userID int64, orderID string) (CancelOrderCommand, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if orderID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("orderId"))
	}
	if err := errors.Join(errList...); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{userID: userID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) UserID() int64 { return c.userID }
func (c CancelOrderCommand) OrderID() string { return c.orderID }
