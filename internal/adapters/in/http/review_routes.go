package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/review"

	"github.com/labstack/echo/v4"
)

type submitReviewRequest struct {
	OrderID          string `json:"orderId"`
	RestaurantRating int    `json:"restaurantRating"`
	FoodRating       int    `json:"foodRating"`
	DeliveryRating   int    `json:"deliveryRating"`
	Comment          string `json:"comment"`
}

// SubmitReview handles POST /reviews/restaurant.
func (s *Server) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitReviewCommand(currentUserID(c), req.OrderID, review.Ratings{
		Restaurant: req.RestaurantRating,
		Food:       req.FoodRating,
		Delivery:   req.DeliveryRating,
	}, req.Comment)
	if err != nil {
		return err
	}

	if err = s.handlers.SubmitReview.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return succeed(c, http.StatusCreated, "Review added successfully", nil)
}

// GetRestaurantReviews handles GET /reviews/restaurant/:restaurantId?limit=&offset=.
// It is public.
func (s *Server) GetRestaurantReviews(c echo.Context) error {
	restaurantID, err := pathID(c, "restaurantId")
	if err != nil {
		return err
	}
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRestaurantReviewsQuery(restaurantID, limit, offset)
	if err != nil {
		return err
	}

	response, err := s.handlers.GetRestaurantReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	reviews := make([]envelope, 0, len(response.Reviews))
	for _, r := range response.Reviews {
		reviews = append(reviews, envelope{
			"id":               r.ID,
			"orderId":          r.OrderID,
			"userName":         r.UserName,
			"restaurantRating": r.RestaurantRating,
			"foodRating":       r.FoodRating,
			"deliveryRating":   r.DeliveryRating,
			"comment":          r.Comment,
			"createdAt":        r.CreatedAt,
		})
	}

	stats := response.Statistics
	distribution := envelope{}
	for star := review.MaxRating; star >= review.MinRating; star-- {
		distribution[strconv.Itoa(star)] = stats.Distribution[star]
	}

	return succeed(c, http.StatusOK, "", envelope{
		"reviews": reviews,
		"statistics": envelope{
			"totalReviews": stats.TotalReviews,
			"averageRating": envelope{
				"restaurant": json.Number(stats.AverageRestaurant.StringFixed(1)),
				"food":       json.Number(stats.AverageFood.StringFixed(1)),
				"delivery":   json.Number(stats.AverageDelivery.StringFixed(1)),
			},
			"ratingDistribution": distribution,
		},
	})
}
