package orderrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	items := itemsFromDomain(aggregate)
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	if err := r.appendTracking(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the mutable state of the order (statuses and timestamp) and appends the
// tracking entries recorded since the order was loaded. Money columns and items are
// immutable once placed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"status":         aggregate.Status().String(),
			"payment_status": aggregate.PaymentStatus().String(),
			"updated_at":     aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("orderId", aggregate.ID(), order.ErrOrderNotFound)
	}

	if err := r.appendTracking(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get loads an order and locks its row until the surrounding transaction ends.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Where("id = ?", id), id)
}

// GetForUser is Get restricted to the owner; orders of other users are reported as not found.
func (r *GormOrderRepository) GetForUser(ctx context.Context, id string, userID int64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID), id)
}

// ListStaleInProgress returns ids of confirmed or in-flight orders whose status has not
// changed since updatedBefore, oldest first.
func (r *GormOrderRepository) ListStaleInProgress(
	ctx context.Context,
	updatedBefore time.Time,
	limit int,
) ([]string, error) {
	statuses := make([]string, 0, len(order.InProgress))
	for _, status := range order.InProgress {
		statuses = append(statuses, status.String())
	}

	var ids []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ANY(?) AND updated_at < ?", pq.Array(statuses), updatedBefore).
		Order("updated_at").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *GormOrderRepository) get(ctx context.Context, scope *gorm.DB, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto OrderDTO
	err := scope.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("orderId", id, order.ErrOrderNotFound)
		}
		return nil, err
	}

	var items []OrderItemDTO
	if err = r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

func (r *GormOrderRepository) appendTracking(db *gorm.DB, aggregate *order.Order) error {
	entries := trackingFromDomain(aggregate.ID(), aggregate.UncommittedTracking())
	if len(entries) == 0 {
		return nil
	}
	if err := db.Create(&entries).Error; err != nil {
		return err
	}
	aggregate.MarkTrackingCommitted()
	return nil
}
