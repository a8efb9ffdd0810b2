// Package http exposes the order workflow over a JSON API built on echo.
//
// Every response uses the envelope {success, message?, ...data}. Errors of the errs
// taxonomy map to 404, 409 and 400; anything else is a logged 500.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const APIPrefix = "/api/v1"

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	logger   *zap.Logger
}

func NewServer(handlers Handlers, auth *Authenticator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{handlers: handlers, auth: auth, logger: logger}
}

// Register installs the middleware, the error handler and every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = errorHandler(s.logger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group(APIPrefix)
	authRequired := s.auth.Middleware()

	cart := api.Group("/cart", authRequired)
	cart.POST("/add", s.AddCartItem)
	cart.GET("", s.GetCart)
	cart.PUT("/update/:itemId", s.UpdateCartItem)
	cart.DELETE("/remove/:itemId", s.RemoveCartItem)
	cart.DELETE("/clear", s.ClearCart)

	orders := api.Group("/orders", authRequired)
	orders.POST("/create", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:orderId", s.GetOrderDetails)
	orders.POST("/:orderId/cancel", s.CancelOrder)

	payments := api.Group("/payments", authRequired)
	payments.POST("/process", s.ProcessPayment)
	payments.GET("/history", s.GetPaymentHistory)

	api.POST("/reviews/restaurant", s.SubmitReview, authRequired)
	api.GET("/reviews/restaurant/:restaurantId", s.GetRestaurantReviews)
}
