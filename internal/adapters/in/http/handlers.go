package http

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
)

type (
	AddCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (commands.CartTotals, error)
	}
	UpdateCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCartItemCommand) (commands.CartTotals, error)
	}
	RemoveCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveCartItemCommand) (commands.CartTotals, error)
	}
	ClearCartHandler interface {
		Handle(ctx context.Context, cmd commands.ClearCartCommand) error
	}
	GetCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (queries.GetCartQueryResponse, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetOrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error)
	}

	ProcessPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ProcessPaymentCommand) (commands.ProcessPaymentResult, error)
	}
	GetPaymentHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetPaymentHistoryQuery) ([]queries.PaymentRecord, error)
	}

	SubmitReviewHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitReviewCommand) error
	}
	GetRestaurantReviewsHandler interface {
		Handle(ctx context.Context, query queries.GetRestaurantReviewsQuery) (queries.GetRestaurantReviewsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AddCartItem    AddCartItemHandler
	UpdateCartItem UpdateCartItemHandler
	RemoveCartItem RemoveCartItemHandler
	ClearCart      ClearCartHandler
	GetCart        GetCartHandler

	CreateOrder     CreateOrderHandler
	CancelOrder     CancelOrderHandler
	ListOrders      ListOrdersHandler
	GetOrderDetails GetOrderDetailsHandler

	ProcessPayment    ProcessPaymentHandler
	GetPaymentHistory GetPaymentHistoryHandler

	SubmitReview         SubmitReviewHandler
	GetRestaurantReviews GetRestaurantReviewsHandler
}
