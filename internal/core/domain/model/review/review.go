package review

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 500
)

var (
	// ErrOrderNotDelivered is the cause reported when an undelivered order is reviewed.
	ErrOrderNotDelivered = errors.New("You can only review delivered orders")
	// ErrDuplicateReview is the cause reported when the order already has a review by the user.
	ErrDuplicateReview = errors.New("You have already reviewed this order")
)

// Ratings are the three scores of a review.
type Ratings struct {
	Restaurant int
	Food       int
	Delivery   int
}

// Validate checks every rating against [MinRating, MaxRating].
func (r Ratings) Validate() error {
	return errors.Join(
		validateRating("restaurantRating", r.Restaurant),
		validateRating("foodRating", r.Food),
		validateRating("deliveryRating", r.Delivery),
	)
}

func validateRating(name string, value int) error {
	if value < MinRating || value > MaxRating {
		return errs.NewValueIsOutOfRangeError(name, value, MinRating, MaxRating)
	}
	return nil
}

// ValidateComment checks the comment length in characters.
func ValidateComment(comment string) error {
	if n := utf8.RuneCountInString(comment); n > MaxCommentLength {
		return errs.NewValueIsInvalidErrorWithCause("comment",
			fmt.Errorf("%d characters exceed the limit of %d", n, MaxCommentLength))
	}
	return nil
}

// Review is the feedback of one customer on one delivered order.
type Review struct {
	id           int64
	userID       int64
	restaurantID int64
	orderID      string
	ratings      Ratings
	comment      string
	createdAt    time.Time
}

// NewReview creates the review of o by userID.
//
// An order of another user is reported as not found. An order that is not delivered is
// rejected with a ValueIsInvalidError carrying ErrOrderNotDelivered.
func NewReview(o *order.Order, userID int64, ratings Ratings, comment string, now time.Time) (*Review, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(userID) {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", o.ID(), order.ErrOrderNotFound)
	}
	if err := errors.Join(ratings.Validate(), ValidateComment(comment)); err != nil {
		return nil, err
	}
	if o.Status() != order.Delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderStatus", ErrOrderNotDelivered)
	}

	return &Review{
		userID:       userID,
		restaurantID: o.RestaurantID(),
		orderID:      o.ID(),
		ratings:      ratings,
		comment:      comment,
		createdAt:    now,
	}, nil
}

func (r *Review) ID() int64 { return r.id }
func (r *Review) UserID() int64 { return r.userID }
func (r *Review) RestaurantID() int64 { return r.restaurantID }
func (r *Review) OrderID() string { return r.orderID }
func (r *Review) Ratings() Ratings { return r.ratings }
func (r *Review) Comment() string { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// AssignID is called by the repository once the review has been inserted.
func (r *Review) AssignID(id int64) {
	r.id = id
}
