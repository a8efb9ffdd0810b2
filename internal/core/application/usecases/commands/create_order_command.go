package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand checks out the user's cart.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, addressID, payment.Card, "ring the bell")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", result.OrderID, result.TotalAmount)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID        int64
	addressID     int64
	paymentMethod payment.Method
	note          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the ids and the payment method.
func NewCreateOrderCommand(userID, addressID int64, method payment.Method, note string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAddressID(addressID),
		cmd.setPaymentMethod(method),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() int64 { return c.userID }
func (c CreateOrderCommand) AddressID() int64 { return c.addressID }
func (c CreateOrderCommand) PaymentMethod() payment.Method { return c.paymentMethod }
func (c CreateOrderCommand) Note() string { return c.note }

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID int64) error {
	if addressID <= 0 {
		return errs.NewValueIsRequiredError("addressId")
	}
	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
