package paymentrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Add(ctx context.Context, attempt *payment.Payment) error {
	dto, err := fromDomain(attempt)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	attempt.AssignID(dto.ID)
	return nil
}

func (r *GormPaymentRepository) HasCompleted(ctx context.Context, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("order_id = ? AND status = ?", orderID, payment.Completed.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
