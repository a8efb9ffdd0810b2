package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CartTotals is returned by every cart write.
type CartTotals struct {
	// CartTotal is subtotal plus the delivery fee of the cart's restaurant.
	CartTotal decimal.Decimal
	ItemCount int
}

func cartTotals(ctx context.Context, catalogRepo ports.CatalogRepository, c *cart.Cart) (CartTotals, error) {
	restaurantID, ok := c.RestaurantID()
	if !ok {
		return CartTotals{CartTotal: decimal.Zero}, nil
	}

	restaurant, err := catalogRepo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return CartTotals{}, err
	}

	return CartTotals{
		CartTotal: c.Subtotal().Add(restaurant.DeliveryFee),
		ItemCount: c.ItemCount(),
	}, nil
}
