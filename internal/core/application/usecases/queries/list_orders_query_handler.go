package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty slice when nothing matches. ItemCount is the number of order
// lines, not the sum of their quantities.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			r.name,
			COALESCE(r.image_url, ''),
			COUNT(oi.id),
			o.total_amount,
			o.status,
			o.payment_method,
			o.payment_status,
			o.created_at,
			o.estimated_delivery_minutes
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = ?`
	args := []any{query.userID}

	if query.status != nil {
		sql += " AND o.status = ?"
		args = append(args, query.status.String())
	}

	sql += `
		GROUP BY o.id, r.name, r.image_url
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?`
	args = append(args, query.page.Limit, query.page.Offset)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var o OrderSummary
		err = rows.Scan(
			&o.OrderID,
			&o.RestaurantName,
			&o.RestaurantImage,
			&o.ItemCount,
			&o.TotalAmount,
			&o.Status,
			&o.PaymentMethod,
			&o.PaymentStatus,
			&o.OrderedAt,
			&o.EstimatedDeliveryMinutes,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
