package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery returns the caller's cart with display data.
type GetCartQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

func NewGetCartQuery(userID int64) (GetCartQuery, error) {
	if userID <= 0 {
		return GetCartQuery{}, errs.NewValueIsRequiredError("userId")
	}
	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartLine is one line of the cart. Price is the snapshot taken when the line was added
// or last merged, which is also the price checkout charges.
type CartLine struct {
	ID                  int64
	MenuItemID          int64
	Name                string
	Description         string
	Price               decimal.Decimal
	Quantity            int
	Total               decimal.Decimal
	SpecialInstructions string
	Image               string
	IsVeg               bool
}

type CartRestaurant struct {
	ID             int64
	Name           string
	DeliveryFee    decimal.Decimal
	MinOrderAmount decimal.Decimal
}

// GetCartQueryResponse is all zeros with a nil Restaurant for an empty cart.
type GetCartQueryResponse struct {
	Items       []CartLine
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	ItemCount   int
	Restaurant  *CartRestaurant
}
