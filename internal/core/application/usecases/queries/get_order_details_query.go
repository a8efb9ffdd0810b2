package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery returns one of the caller's orders with items and tracking log.
type GetOrderDetailsQuery struct {
	userID  int64
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(userID int64, orderID string) (GetOrderDetailsQuery, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if orderID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("orderId"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{userID: userID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

type OrderRestaurant struct {
	Name  string
	Phone string
	Image string
}

// OrderLine carries the price charged at order time.
type OrderLine struct {
	Name                string
	Quantity            int
	Price               decimal.Decimal
	Total               decimal.Decimal
	Image               string
	IsVeg               bool
	SpecialInstructions string
}

type TrackingEntry struct {
	Status    string
	Timestamp time.Time
	Notes     string
}

type DeliveryPartner struct {
	Name  string
	Phone string
}

type OrderDetails struct {
	OrderID                  string
	Restaurant               OrderRestaurant
	Items                    []OrderLine
	DeliveryAddress          string
	Subtotal                 decimal.Decimal
	DeliveryFee              decimal.Decimal
	TaxAmount                decimal.Decimal
	TotalAmount              decimal.Decimal
	PaymentMethod            string
	PaymentStatus            string
	Status                   string
	SpecialInstructions      string
	EstimatedDeliveryMinutes int
	OrderedAt                time.Time
	Tracking                 []TrackingEntry
	// DeliveryPartner is nil until a partner is assigned.
	DeliveryPartner *DeliveryPartner
}
