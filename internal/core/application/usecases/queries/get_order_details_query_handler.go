package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle reports orders of other users as not found.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	db := h.db.WithContext(ctx)

	var details OrderDetails
	var line1, line2, city, state, pincode string
	var partnerName, partnerPhone sql.NullString

	err := db.Raw(`
		SELECT
			o.id,
			r.name,
			COALESCE(r.phone, ''),
			COALESCE(r.image_url, ''),
			a.address_line1,
			COALESCE(a.address_line2, ''),
			a.city,
			a.state,
			a.pincode,
			o.subtotal,
			o.delivery_fee,
			o.tax_amount,
			o.total_amount,
			o.payment_method,
			o.payment_status,
			o.status,
			COALESCE(o.special_instructions, ''),
			o.estimated_delivery_minutes,
			o.created_at,
			dp.name,
			dp.phone
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN addresses a ON a.id = o.address_id
		LEFT JOIN delivery_partners dp ON dp.id = o.delivery_partner_id
		WHERE o.id = ? AND o.user_id = ?
	`, query.orderID, query.userID).Row().Scan(
		&details.OrderID,
		&details.Restaurant.Name,
		&details.Restaurant.Phone,
		&details.Restaurant.Image,
		&line1,
		&line2,
		&city,
		&state,
		&pincode,
		&details.Subtotal,
		&details.DeliveryFee,
		&details.TaxAmount,
		&details.TotalAmount,
		&details.PaymentMethod,
		&details.PaymentStatus,
		&details.Status,
		&details.SpecialInstructions,
		&details.EstimatedDeliveryMinutes,
		&details.OrderedAt,
		&partnerName,
		&partnerPhone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetails{}, errs.NewObjectNotFoundErrorWithCause("orderId", query.orderID, order.ErrOrderNotFound)
		}
		return OrderDetails{}, err
	}

	details.DeliveryAddress = formatAddress(line1, line2, city, state, pincode)
	if partnerName.Valid {
		details.DeliveryPartner = &DeliveryPartner{Name: partnerName.String, Phone: partnerPhone.String}
	}

	if details.Items, err = h.items(db, details.OrderID); err != nil {
		return OrderDetails{}, err
	}
	if details.Tracking, err = h.tracking(db, details.OrderID); err != nil {
		return OrderDetails{}, err
	}

	return details, nil
}

func (h GetOrderDetailsQueryHandler) items(db *gorm.DB, orderID string) ([]OrderLine, error) {
	rows, err := db.Raw(`
		SELECT
			mi.name,
			oi.quantity,
			oi.price,
			COALESCE(mi.image_url, ''),
			mi.is_veg,
			COALESCE(oi.special_instructions, '')
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderLine, 0)
	for rows.Next() {
		var item OrderLine
		if err = rows.Scan(
			&item.Name,
			&item.Quantity,
			&item.Price,
			&item.Image,
			&item.IsVeg,
			&item.SpecialInstructions,
		); err != nil {
			return nil, err
		}
		item.Total = kernel.LineTotal(item.Price, item.Quantity)
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderDetailsQueryHandler) tracking(db *gorm.DB, orderID string) ([]TrackingEntry, error) {
	rows, err := db.Raw(`
		SELECT status, created_at, COALESCE(notes, '')
		FROM order_tracking
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]TrackingEntry, 0)
	for rows.Next() {
		var entry TrackingEntry
		if err = rows.Scan(&entry.Status, &entry.Timestamp, &entry.Notes); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// formatAddress renders "line1[, line2], city, state - pincode".
func formatAddress(line1, line2, city, state, pincode string) string {
	if line2 != "" {
		line1 = line1 + ", " + line2
	}
	return fmt.Sprintf("%s, %s, %s - %s", line1, city, state, pincode)
}
