// Package paymentrepo stores one row per payment attempt.
package paymentrepo

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID              int64           `gorm:"primaryKey"`
	OrderID         string          `gorm:"type:varchar(32);not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod   string          `gorm:"type:varchar(16);not null"`
	TransactionID   *string         `gorm:"type:varchar(64)"`
	GatewayResponse json.RawMessage `gorm:"type:jsonb;not null;default:'{}'"`
	Status          string          `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) (PaymentDTO, error) {
	response, err := json.Marshal(p.GatewayResponse())
	if err != nil {
		return PaymentDTO{}, err
	}

	var transactionID *string
	if id := p.TransactionID(); id != "" {
		transactionID = &id
	}

	return PaymentDTO{
		ID:              p.ID(),
		OrderID:         p.OrderID(),
		Amount:          p.Amount(),
		PaymentMethod:   p.Method().String(),
		TransactionID:   transactionID,
		GatewayResponse: response,
		Status:          p.Status().String(),
		CreatedAt:       p.CreatedAt(),
	}, nil
}
