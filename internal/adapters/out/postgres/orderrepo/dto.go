// Package orderrepo persists the order aggregate across the orders, order_items and
// order_tracking tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID                       string          `gorm:"type:varchar(32);primaryKey"`
	UserID                   int64           `gorm:"not null;index"`
	RestaurantID             int64           `gorm:"not null;index"`
	AddressID                int64           `gorm:"not null"`
	DeliveryPartnerID        *int64          `gorm:"index"`
	Subtotal                 decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxAmount                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalAmount              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod            string          `gorm:"type:varchar(16);not null"`
	PaymentStatus            string          `gorm:"type:varchar(16);not null;default:pending"`
	Status                   string          `gorm:"type:varchar(32);not null;index:idx_orders_status_updated_at"`
	SpecialInstructions      string          `gorm:"type:text"`
	EstimatedDeliveryMinutes int             `gorm:"not null"`
	CreatedAt                time.Time       `gorm:"not null"`
	UpdatedAt                time.Time       `gorm:"not null;index:idx_orders_status_updated_at"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO stores the price a line was ordered at; it is never recomputed.
type OrderItemDTO struct {
	ID                  int64           `gorm:"primaryKey"`
	OrderID             string          `gorm:"type:varchar(32);not null;index"`
	MenuItemID          int64           `gorm:"not null"`
	Quantity            int             `gorm:"not null"`
	Price               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SpecialInstructions string          `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderTrackingDTO is one append-only status log entry.
type OrderTrackingDTO struct {
	ID        int64     `gorm:"primaryKey"`
	OrderID   string    `gorm:"type:varchar(32);not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                       o.ID(),
		UserID:                   o.UserID(),
		RestaurantID:             o.RestaurantID(),
		AddressID:                o.AddressID(),
		Subtotal:                 o.Subtotal(),
		DeliveryFee:              o.DeliveryFee(),
		TaxAmount:                o.TaxAmount(),
		TotalAmount:              o.TotalAmount(),
		PaymentMethod:            o.PaymentMethod().String(),
		PaymentStatus:            o.PaymentStatus().String(),
		Status:                   o.Status().String(),
		SpecialInstructions:      o.Note(),
		EstimatedDeliveryMinutes: o.EstimatedDeliveryMinutes(),
		CreatedAt:                o.CreatedAt(),
		UpdatedAt:                o.UpdatedAt(),
	}
}

func itemsFromDomain(o *order.Order) []OrderItemDTO {
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:             o.ID(),
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			Price:               item.UnitPrice,
			SpecialInstructions: item.Note,
		})
	}
	return dtos
}

func trackingFromDomain(orderID string, entries []order.TrackingEntry) []OrderTrackingDTO {
	dtos := make([]OrderTrackingDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, OrderTrackingDTO{
			OrderID:   orderID,
			Status:    entry.Status.String(),
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		})
	}
	return dtos
}

func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := payment.ParseStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	method, err := payment.ParseMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, item := range itemDTOs {
		items = append(items, order.Item{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
			Note:       item.SpecialInstructions,
		})
	}

	return order.RestoreOrder(
		dto.ID, dto.UserID, dto.RestaurantID, dto.AddressID,
		items,
		dto.Subtotal, dto.DeliveryFee, dto.TaxAmount, dto.TotalAmount,
		method, status, paymentStatus,
		dto.EstimatedDeliveryMinutes, dto.SpecialInstructions,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
