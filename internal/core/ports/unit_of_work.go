package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then dispatches the domain events of
	// the aggregates written in it.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. It fails with no active transaction.
	Rollback(ctx context.Context) error

	// Repositories bound to the transaction started by Begin.
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	PaymentRepository() PaymentRepository
	ReviewRepository() ReviewRepository
	CatalogRepository() CatalogRepository
	AddressRepository() AddressRepository
}
