package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand is one payment attempt for an order of the user.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	orderID string
	method  payment.Method
	details payment.Details

	guard guard.ConstructorGuard
}

func NewProcessPaymentCommand(
	userID int64,
	orderID string,
	method payment.Method,
	details payment.Details,
) (ProcessPaymentCommand, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if orderID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("orderId"))
	}
	errList = append(errList, method.Validate())
	if err := errors.Join(errList...); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return ProcessPaymentCommand{
		userID:  userID,
		orderID: orderID,
		method:  method,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

func (c ProcessPaymentCommand) UserID() int64 { return c.userID }
func (c ProcessPaymentCommand) OrderID() string { return c.orderID }
func (c ProcessPaymentCommand) Method() payment.Method { return c.method }
func (c ProcessPaymentCommand) Details() payment.Details { return c.details }
