package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.id,
			ci.menu_item_id,
			mi.name,
			COALESCE(mi.description, ''),
			ci.price_snapshot,
			ci.quantity,
			COALESCE(ci.special_instructions, ''),
			COALESCE(mi.image_url, ''),
			mi.is_veg,
			r.id,
			r.name,
			r.delivery_fee,
			r.min_order_amount
		FROM cart_items ci
		JOIN menu_items mi ON mi.id = ci.menu_item_id
		JOIN restaurants r ON r.id = ci.restaurant_id
		WHERE ci.user_id = ?
		ORDER BY ci.created_at DESC, ci.id DESC
	`, query.userID).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	response := GetCartQueryResponse{
		Items:       make([]CartLine, 0),
		Subtotal:    decimal.Zero,
		DeliveryFee: decimal.Zero,
		Total:       decimal.Zero,
	}

	for rows.Next() {
		var line CartLine
		var restaurant CartRestaurant

		err = rows.Scan(
			&line.ID,
			&line.MenuItemID,
			&line.Name,
			&line.Description,
			&line.Price,
			&line.Quantity,
			&line.SpecialInstructions,
			&line.Image,
			&line.IsVeg,
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.DeliveryFee,
			&restaurant.MinOrderAmount,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		line.Total = kernel.LineTotal(line.Price, line.Quantity)
		response.Items = append(response.Items, line)
		response.Subtotal = response.Subtotal.Add(line.Total)
		response.ItemCount += line.Quantity

		if response.Restaurant == nil {
			response.Restaurant = &restaurant
		}
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	if response.Restaurant != nil {
		response.DeliveryFee = response.Restaurant.DeliveryFee
		response.Total = response.Subtotal.Add(response.DeliveryFee)
	}

	return response, nil
}
