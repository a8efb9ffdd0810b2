package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	AddressID           int64  `json:"addressId"`
	PaymentMethod       string `json:"paymentMethod"`
	SpecialInstructions string `json:"specialInstructions"`
}

// CreateOrder handles POST /orders/create.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(currentUserID(c), req.AddressID, method, req.SpecialInstructions)
	if err != nil {
		return err
	}

	result, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return succeed(c, http.StatusCreated, "Order placed successfully", envelope{
		"orderId":               result.OrderID,
		"totalAmount":           money(result.TotalAmount),
		"estimatedDeliveryTime": result.EstimatedDeliveryRange(),
		"estimatedDeliveryRange": envelope{
			"minMinutes": result.EstimatedFrom,
			"maxMinutes": result.EstimatedTo,
		},
		"status": result.Status.String(),
	})
}

// ListOrders handles GET /orders?status=&limit=&offset=.
func (s *Server) ListOrders(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}

	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(currentUserID(c), status, limit, offset)
	if err != nil {
		return err
	}

	summaries, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	orders := make([]envelope, 0, len(summaries))
	for _, o := range summaries {
		orders = append(orders, envelope{
			"orderId":               o.OrderID,
			"restaurantName":        o.RestaurantName,
			"restaurantImage":       o.RestaurantImage,
			"items":                 o.ItemCount,
			"totalAmount":           money(o.TotalAmount),
			"status":                o.Status,
			"paymentMethod":         o.PaymentMethod,
			"paymentStatus":         o.PaymentStatus,
			"orderedAt":             o.OrderedAt,
			"estimatedDeliveryTime": o.EstimatedDeliveryMinutes,
		})
	}

	return succeed(c, http.StatusOK, "", envelope{"orders": orders})
}

// GetOrderDetails handles GET /orders/:orderId.
func (s *Server) GetOrderDetails(c echo.Context) error {
	query, err := queries.NewGetOrderDetailsQuery(currentUserID(c), c.Param("orderId"))
	if err != nil {
		return err
	}

	details, err := s.handlers.GetOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	items := make([]envelope, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, envelope{
			"name":                item.Name,
			"quantity":            item.Quantity,
			"price":               money(item.Price),
			"total":               money(item.Total),
			"image":               item.Image,
			"isVeg":               item.IsVeg,
			"specialInstructions": item.SpecialInstructions,
		})
	}

	tracking := make([]envelope, 0, len(details.Tracking))
	for _, entry := range details.Tracking {
		tracking = append(tracking, envelope{
			"status":    entry.Status,
			"timestamp": entry.Timestamp,
			"notes":     entry.Notes,
		})
	}

	body := envelope{
		"orderId": details.OrderID,
		"restaurant": envelope{
			"name":  details.Restaurant.Name,
			"phone": details.Restaurant.Phone,
			"image": details.Restaurant.Image,
		},
		"items":                 items,
		"deliveryAddress":       details.DeliveryAddress,
		"subtotal":              money(details.Subtotal),
		"deliveryFee":           money(details.DeliveryFee),
		"taxAmount":             money(details.TaxAmount),
		"totalAmount":           money(details.TotalAmount),
		"paymentMethod":         details.PaymentMethod,
		"paymentStatus":         details.PaymentStatus,
		"status":                details.Status,
		"specialInstructions":   details.SpecialInstructions,
		"estimatedDeliveryTime": details.EstimatedDeliveryMinutes,
		"orderedAt":             details.OrderedAt,
		"tracking":              tracking,
	}
	if p := details.DeliveryPartner; p != nil {
		body["deliveryPartner"] = envelope{"name": p.Name, "phone": p.Phone}
	}

	return succeed(c, http.StatusOK, "", envelope{"order": body})
}

// CancelOrder handles POST /orders/:orderId/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(currentUserID(c), c.Param("orderId"))
	if err != nil {
		return err
	}

	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return succeed(c, http.StatusOK, "Order cancelled successfully", nil)
}
