package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/paymentrepo"
	"fooddelivery/internal/adapters/out/postgres/reviewrepo"

	"gorm.io/gorm"
)

// Models lists every table the service migrates, catalog tables included so that a fresh
// database is usable for local runs and integration tests.
func Models() []any {
	return []any{
		&catalogrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&catalogrepo.AddressDTO{},
		&catalogrepo.DeliveryPartnerDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderTrackingDTO{},
		&paymentrepo.PaymentDTO{},
		&reviewrepo.ReviewDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
