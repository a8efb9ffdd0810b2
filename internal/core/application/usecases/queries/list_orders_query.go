package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultOrdersLimit is the page size of order and payment listings.
const DefaultOrdersLimit = 20

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the caller's orders, newest first.
//
// Example:
//
//	status := order.Delivered
//	query, err := NewListOrdersQuery(userID, &status, 0, 0)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	userID int64
	status *order.Status
	page   Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts a nil status for all orders.
func NewListOrdersQuery(userID int64, status *order.Status, limit, offset int) (ListOrdersQuery, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if status != nil {
		errList = append(errList, status.Validate())
	}
	page, err := NewPage(limit, offset, DefaultOrdersLimit)
	errList = append(errList, err)
	if err = errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{userID: userID, status: status, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type OrderSummary struct {
	OrderID                  string
	RestaurantName           string
	RestaurantImage          string
	ItemCount                int
	TotalAmount              decimal.Decimal
	Status                   string
	PaymentMethod            string
	PaymentStatus            string
	OrderedAt                time.Time
	EstimatedDeliveryMinutes int
}
