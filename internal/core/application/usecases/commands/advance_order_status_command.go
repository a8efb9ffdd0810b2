package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// ErrOrderNotDue is the conflict cause when the order changed after the progression job
// selected it.
var ErrOrderNotDue = errors.New("order changed since it was selected for progression")

// AdvanceOrderStatusCommand moves an order one step along the kitchen and courier path.
// It is issued by the progression job, not by customers.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	updatedBefore time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand advances the order only if its last change is older than
// updatedBefore. A zero updatedBefore advances unconditionally.
func NewAdvanceOrderStatusCommand(orderID string, updatedBefore time.Time) (AdvanceOrderStatusCommand, error) {
	if orderID == "" {
		return AdvanceOrderStatusCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	return AdvanceOrderStatusCommand{
		orderID:       orderID,
		updatedBefore: updatedBefore,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() string {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) UpdatedBefore() time.Time {
	return c.updatedBefore
}
