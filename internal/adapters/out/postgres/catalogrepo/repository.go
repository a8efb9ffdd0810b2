package catalogrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id int64) (catalog.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Restaurant{}, errs.NewObjectNotFoundErrorWithCause("restaurantId", id, catalog.ErrRestaurantNotFound)
		}
		return catalog.Restaurant{}, err
	}

	return restaurantToDomain(dto)
}

func (r *GormCatalogRepository) GetMenuItem(ctx context.Context, id int64) (catalog.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.MenuItem{}, errs.NewObjectNotFoundErrorWithCause("itemId", id, catalog.ErrMenuItemNotFound)
		}
		return catalog.MenuItem{}, err
	}

	return menuItemToDomain(dto), nil
}

// LockRestaurant takes the row lock that serializes rating recomputation for a restaurant.
func (r *GormCatalogRepository) LockRestaurant(ctx context.Context, id int64) error {
	var dto RestaurantDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("restaurantId", id, catalog.ErrRestaurantNotFound)
		}
		return err
	}
	return nil
}

// UpdateRating overwrites the derived rating fields. Callers recompute them from all reviews.
func (r *GormCatalogRepository) UpdateRating(
	ctx context.Context,
	restaurantID int64,
	rating decimal.Decimal,
	totalReviews int,
) error {
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", restaurantID).
		Updates(map[string]any{
			"rating":        rating,
			"total_reviews": totalReviews,
			"updated_at":    gorm.Expr("now()"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("restaurantId", restaurantID, catalog.ErrRestaurantNotFound)
	}
	return nil
}

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// GetForUser reports addresses of other users as not found.
func (r *GormAddressRepository) GetForUser(ctx context.Context, id, userID int64) (catalog.Address, error) {
	var dto AddressDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Address{}, errs.NewObjectNotFoundErrorWithCause("addressId", id, catalog.ErrAddressNotFound)
		}
		return catalog.Address{}, err
	}

	return addressToDomain(dto)
}
