// Package postgres provides the GORM-based unit of work shared by all write operations.
//
// A unit of work wraps one database transaction. Repositories obtained from it after Begin
// run inside that transaction; before Begin they run against the plain connection pool.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.CartRepository().LockForUser(ctx, userID); err != nil {
//	    return err
//	}
//	...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op that returns gorm.ErrInvalidTransaction,
// which is why handlers discard its result.
//
// Orders written through the unit of work are tracked; their status-change events are
// handed to the configured publisher once Commit succeeds. Publishing is best effort: a
// failure is logged and does not affect the committed transaction.
package postgres

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/paymentrepo"
	"fooddelivery/internal/adapters/out/postgres/reviewrepo"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates a fresh unit of work per business operation.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory without event publishing.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: zap.NewNop()}
}

// WithEventPublisher returns a copy of the factory whose units of work publish order
// events after commit.
func (f *GormUnitOfWorkFactory) WithEventPublisher(
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{db: f.db, publisher: publisher, logger: logger}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *zap.Logger

	trackedOrders []*order.Order
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedOrders = nil
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedOrders = nil
	return err
}

func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn())
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return catalogrepo.NewGormAddressRepository(uow.conn())
}

// TrackAggregate remembers an order written in this unit of work. Tracking the same order
// twice is harmless; its events are collected once.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	for _, tracked := range uow.trackedOrders {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedOrders = append(uow.trackedOrders, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.trackedOrders
	uow.trackedOrders = nil

	var events []order.StatusChanged
	for _, o := range tracked {
		events = append(events, o.DomainEvents()...)
		o.ClearDomainEvents()
	}

	if uow.publisher == nil || len(events) == 0 {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.Error("failed to publish order events",
			zap.Int("count", len(events)), zap.Error(err))
	}
}
