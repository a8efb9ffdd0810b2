package cartrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"

	"gorm.io/gorm"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// LockForUser takes a transaction-scoped advisory lock keyed by the user id. Every cart
// writer calls it first, so read-modify-write sequences on one cart never interleave.
// Outside a transaction the lock is released immediately and serializes nothing.
func (r *GormCartRepository) LockForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", userID).Error
}

func (r *GormCartRepository) Get(ctx context.Context, userID int64) (*cart.Cart, error) {
	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomain(userID, dtos), nil
}

// Save makes the stored lines match the aggregate: lines that are gone are deleted, known
// lines are updated, new lines are inserted.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	db := r.db.WithContext(ctx)
	items := aggregate.Items()

	kept := make([]int64, 0, len(items))
	for _, item := range items {
		if !item.IsNew() {
			kept = append(kept, item.ID())
		}
	}

	stale := db.Where("user_id = ?", aggregate.UserID())
	if len(kept) > 0 {
		stale = stale.Where("id NOT IN ?", kept)
	}
	if err := stale.Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	for _, item := range items {
		dto := fromDomain(aggregate.UserID(), item)
		if item.IsNew() {
			if err := db.Create(&dto).Error; err != nil {
				return err
			}
			continue
		}

		err := db.Model(&CartItemDTO{}).
			Where("id = ? AND user_id = ?", dto.ID, dto.UserID).
			Updates(map[string]any{
				"quantity":             dto.Quantity,
				"special_instructions": dto.SpecialInstructions,
				"price_snapshot":       dto.PriceSnapshot,
				"updated_at":           gorm.Expr("now()"),
			}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Clear deletes every line of the user. Clearing an empty cart is not an error.
func (r *GormCartRepository) Clear(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&CartItemDTO{}).Error
}
