package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type GetPaymentHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentHistoryQueryHandler(db *gorm.DB) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{db: db}
}

func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) ([]PaymentRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.order_id,
			r.name,
			p.amount,
			p.payment_method,
			p.transaction_id,
			p.status,
			p.created_at
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.user_id = ?
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?
	`, query.userID, query.page.Limit, query.page.Offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentRecord, 0)
	for rows.Next() {
		var p PaymentRecord
		var transactionID sql.NullString
		err = rows.Scan(
			&p.ID,
			&p.OrderID,
			&p.RestaurantName,
			&p.Amount,
			&p.PaymentMethod,
			&transactionID,
			&p.Status,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if transactionID.Valid {
			p.TransactionID = &transactionID.String
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
