package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type addCartItemRequest struct {
	RestaurantID        int64  `json:"restaurantId"`
	ItemID              int64  `json:"itemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartTotalsBody(totals commands.CartTotals) envelope {
	return envelope{"cartTotal": money(totals.CartTotal), "itemCount": totals.ItemCount}
}

// AddCartItem handles POST /cart/add.
func (s *Server) AddCartItem(c echo.Context) error {
	var req addCartItemRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(
		currentUserID(c), req.RestaurantID, req.ItemID, req.Quantity, req.SpecialInstructions,
	)
	if err != nil {
		return err
	}

	totals, err := s.handlers.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return succeed(c, http.StatusOK, "Item added to cart", cartTotalsBody(totals))
}

// GetCart handles GET /cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(currentUserID(c))
	if err != nil {
		return err
	}

	cart, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	items := make([]envelope, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, envelope{
			"id":                  line.ID,
			"menuItemId":          line.MenuItemID,
			"name":                line.Name,
			"description":         line.Description,
			"price":               money(line.Price),
			"quantity":            line.Quantity,
			"total":               money(line.Total),
			"specialInstructions": line.SpecialInstructions,
			"image":               line.Image,
			"isVeg":               line.IsVeg,
		})
	}

	body := envelope{
		"items":       items,
		"subtotal":    money(cart.Subtotal),
		"deliveryFee": money(cart.DeliveryFee),
		"total":       money(cart.Total),
		"itemCount":   cart.ItemCount,
		"restaurant":  nil,
	}
	if r := cart.Restaurant; r != nil {
		body["restaurant"] = envelope{
			"id":             r.ID,
			"name":           r.Name,
			"deliveryFee":    money(r.DeliveryFee),
			"minOrderAmount": money(r.MinOrderAmount),
		}
		body["minOrderAmount"] = money(r.MinOrderAmount)
	}

	return succeed(c, http.StatusOK, "", body)
}

// UpdateCartItem handles PUT /cart/update/:itemId.
func (s *Server) UpdateCartItem(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var req updateCartItemRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCartItemCommand(currentUserID(c), itemID, req.Quantity)
	if err != nil {
		return err
	}

	totals, err := s.handlers.UpdateCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return succeed(c, http.StatusOK, "Cart item updated", cartTotalsBody(totals))
}

// RemoveCartItem handles DELETE /cart/remove/:itemId.
func (s *Server) RemoveCartItem(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(currentUserID(c), itemID)
	if err != nil {
		return err
	}

	totals, err := s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return succeed(c, http.StatusOK, "Item removed from cart", cartTotalsBody(totals))
}

// ClearCart handles DELETE /cart/clear.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(currentUserID(c))
	if err != nil {
		return err
	}

	if err = s.handlers.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return succeed(c, http.StatusOK, "Cart cleared successfully", nil)
}
