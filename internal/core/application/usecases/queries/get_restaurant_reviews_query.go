package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// DefaultReviewsLimit is the page size of review listings.
const DefaultReviewsLimit = 10

var ErrGetRestaurantReviewsQueryIsNotConstructed = errors.New(
	"GetRestaurantReviewsQuery must be created via NewGetRestaurantReviewsQuery constructor",
)

// GetRestaurantReviewsQuery pages through the reviews of a restaurant together with
// its rating statistics. It does not require an authenticated user.
type GetRestaurantReviewsQuery struct {
	restaurantID int64
	page         Page

	guard guard.ConstructorGuard
}

func NewGetRestaurantReviewsQuery(restaurantID int64, limit, offset int) (GetRestaurantReviewsQuery, error) {
	var errList []error
	if restaurantID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("restaurantId"))
	}
	page, err := NewPage(limit, offset, DefaultReviewsLimit)
	errList = append(errList, err)
	if err = errors.Join(errList...); err != nil {
		return GetRestaurantReviewsQuery{}, err
	}

	return GetRestaurantReviewsQuery{restaurantID: restaurantID, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantReviewsQueryIsNotConstructed)
}

type ReviewEntry struct {
	ID               int64
	OrderID          string
	UserName         string
	RestaurantRating int
	FoodRating       int
	DeliveryRating   int
	Comment          string
	CreatedAt        time.Time
}

type GetRestaurantReviewsQueryResponse struct {
	Reviews    []ReviewEntry
	Statistics review.Statistics
}
