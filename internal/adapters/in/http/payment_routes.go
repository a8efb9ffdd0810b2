package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

type processPaymentRequest struct {
	OrderID        string `json:"orderId"`
	PaymentMethod  string `json:"paymentMethod"`
	PaymentDetails struct {
		CardNumber string `json:"cardNumber"`
		UPIID      string `json:"upiId"`
	} `json:"paymentDetails"`
}

// ProcessPayment handles POST /payments/process. A declined attempt is answered with
// 200 and success=false.
func (s *Server) ProcessPayment(c echo.Context) error {
	var req processPaymentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	cmd, err := commands.NewProcessPaymentCommand(currentUserID(c), req.OrderID, method, payment.Details{
		CardNumber: req.PaymentDetails.CardNumber,
		UPIID:      req.PaymentDetails.UPIID,
	})
	if err != nil {
		return err
	}

	result, err := s.handlers.ProcessPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	body := envelope{
		"paymentStatus": result.PaymentStatus.String(),
		"transactionId": nil,
		"amount":        money(result.Amount),
	}
	if result.TransactionID != "" {
		body["transactionId"] = result.TransactionID
	}
	if result.Err != nil {
		body["error"] = result.Err.Error()
	}

	return respond(c, http.StatusOK, result.PaymentStatus != payment.Failed, result.Message(), body)
}

// GetPaymentHistory handles GET /payments/history?limit=&offset=.
func (s *Server) GetPaymentHistory(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPaymentHistoryQuery(currentUserID(c), limit, offset)
	if err != nil {
		return err
	}

	records, err := s.handlers.GetPaymentHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	payments := make([]envelope, 0, len(records))
	for _, p := range records {
		payments = append(payments, envelope{
			"id":             p.ID,
			"orderId":        p.OrderID,
			"restaurantName": p.RestaurantName,
			"amount":         money(p.Amount),
			"paymentMethod":  p.PaymentMethod,
			"transactionId":  p.TransactionID,
			"status":         p.Status,
			"createdAt":      p.CreatedAt,
		})
	}

	return succeed(c, http.StatusOK, "", envelope{"payments": payments})
}
