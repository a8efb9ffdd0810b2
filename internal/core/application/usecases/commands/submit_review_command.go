package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand rates a delivered order.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	orderID string
	ratings review.Ratings
	comment string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand validates every rating and the comment length.
func NewSubmitReviewCommand(userID int64, orderID string, ratings review.Ratings, comment string) (SubmitReviewCommand, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if orderID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("orderId"))
	}
	errList = append(errList, ratings.Validate(), review.ValidateComment(comment))
	if err := errors.Join(errList...); err != nil {
		return SubmitReviewCommand{}, err
	}

	return SubmitReviewCommand{
		userID:  userID,
		orderID: orderID,
		ratings: ratings,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

func (c SubmitReviewCommand) UserID() int64 { return c.userID }
func (c SubmitReviewCommand) OrderID() string { return c.orderID }
func (c SubmitReviewCommand) Ratings() review.Ratings { return c.ratings }
func (c SubmitReviewCommand) Comment() string { return c.comment }
