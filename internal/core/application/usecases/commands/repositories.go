// Package commands contains business operations that modify system state.
// Every handler follows the same pattern: validate the command, begin a unit of work,
// load and mutate aggregates, persist them and commit.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// CartUoW serves the cart handlers.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans cart, catalog, address book and orders for order creation.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		CatalogRepoFactory
		AddressRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW serves handlers that only change order status.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW writes a payment attempt and its outcome on the order in one transaction.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// ReviewUoW writes a review and the derived restaurant rating in one transaction.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
		CatalogRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
