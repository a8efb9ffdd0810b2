// Package cartrepo persists carts as one cart_items row per line.
package cartrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/cart"

	"github.com/shopspring/decimal"
)

// CartItemDTO maps the cart_items table. A user holds at most one row per menu item.
type CartItemDTO struct {
	ID                  int64           `gorm:"primaryKey"`
	UserID              int64           `gorm:"not null;uniqueIndex:idx_cart_items_user_menu_item;index"`
	RestaurantID        int64           `gorm:"not null"`
	MenuItemID          int64           `gorm:"not null;uniqueIndex:idx_cart_items_user_menu_item"`
	Quantity            int             `gorm:"not null;check:quantity > 0"`
	SpecialInstructions string          `gorm:"type:text"`
	PriceSnapshot       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(userID int64, item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:                  item.ID(),
		UserID:              userID,
		RestaurantID:        item.RestaurantID(),
		MenuItemID:          item.MenuItemID(),
		Quantity:            item.Quantity(),
		SpecialInstructions: item.Note(),
		PriceSnapshot:       item.UnitPrice(),
	}
}

func toDomain(userID int64, dtos []CartItemDTO) *cart.Cart {
	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, cart.RestoreItem(
			dto.ID, dto.RestaurantID, dto.MenuItemID, dto.Quantity, dto.SpecialInstructions, dto.PriceSnapshot,
		))
	}
	return cart.RestoreCart(userID, items)
}
