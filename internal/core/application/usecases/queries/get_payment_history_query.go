package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery lists every payment attempt on the caller's orders, newest first.
type GetPaymentHistoryQuery struct {
	userID int64
	page   Page

	guard guard.ConstructorGuard
}

func NewGetPaymentHistoryQuery(userID int64, limit, offset int) (GetPaymentHistoryQuery, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	page, err := NewPage(limit, offset, DefaultOrdersLimit)
	errList = append(errList, err)
	if err = errors.Join(errList...); err != nil {
		return GetPaymentHistoryQuery{}, err
	}

	return GetPaymentHistoryQuery{userID: userID, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

type PaymentRecord struct {
	ID             int64
	OrderID        string
	RestaurantName string
	Amount         decimal.Decimal
	PaymentMethod  string
	// TransactionID is nil for cash attempts.
	TransactionID *string
	Status        string
	CreatedAt     time.Time
}
