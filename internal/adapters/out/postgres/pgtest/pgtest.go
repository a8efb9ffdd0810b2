// Package pgtest starts a disposable PostgreSQL for integration suites and seeds the
// catalog rows the ordering tables refer to.
package pgtest

import (
	"context"
	"time"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every migrated table in truncation order.
const Tables = "reviews, payments, order_tracking, order_items, orders, cart_items, " +
	"delivery_partners, addresses, menu_items, restaurants, users"

// Start runs postgres:15-alpine and returns a migrated connection.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return container, nil, err
	}

	if err = postgresadapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table and restarts the id sequences.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " RESTART IDENTITY CASCADE").Error
}

// Catalog holds the ids of the rows created by SeedCatalog.
type Catalog struct {
	UserID          int64
	OtherUserID     int64
	RestaurantID    int64
	OtherRestaurant int64
	MenuItemID      int64
	SecondItemID    int64
	OtherMenuItemID int64
	AddressID       int64
	PartnerID       int64
}

// SeedCatalog inserts two users, two restaurants with menus, one address and one
// delivery partner.
//
// Restaurant "Spice Route" charges a delivery fee of 40 with a minimum order of 199;
// its dishes cost 300 and 120. The other restaurant's only dish costs 250.
func SeedCatalog(db *gorm.DB) (Catalog, error) {
	users := []catalogrepo.UserDTO{{Name: "Asha Rao"}, {Name: "Ravi Kumar"}}
	if err := db.Create(&users).Error; err != nil {
		return Catalog{}, err
	}

	lat, lon := 12.9716, 77.5946
	restaurants := []catalogrepo.RestaurantDTO{
		{
			Name:               "Spice Route",
			Phone:              "+91 9876543210",
			ImageURL:           "https://img.example/spice.jpg",
			DeliveryFee:        decimal.NewFromInt(40),
			MinOrderAmount:     decimal.NewFromInt(199),
			PreparationMinutes: 20,
			IsActive:           true,
			IsOpen:             true,
			Latitude:           &lat,
			Longitude:          &lon,
		},
		{
			Name:           "Dosa Corner",
			DeliveryFee:    decimal.NewFromInt(30),
			MinOrderAmount: decimal.NewFromInt(99),
			IsActive:       true,
			IsOpen:         true,
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return Catalog{}, err
	}

	items := []catalogrepo.MenuItemDTO{
		{RestaurantID: restaurants[0].ID, Name: "Paneer Tikka", Price: decimal.NewFromInt(300), IsVeg: true, IsAvailable: true},
		{RestaurantID: restaurants[0].ID, Name: "Garlic Naan", Price: decimal.NewFromInt(120), IsVeg: true, IsAvailable: true},
		{RestaurantID: restaurants[1].ID, Name: "Masala Dosa", Price: decimal.NewFromInt(250), IsVeg: true, IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return Catalog{}, err
	}

	addrLat, addrLon := 12.9816, 77.5946
	address := catalogrepo.AddressDTO{
		UserID:       users[0].ID,
		AddressLine1: "12 MG Road",
		AddressLine2: "Flat 4B",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Latitude:     &addrLat,
		Longitude:    &addrLon,
	}
	if err := db.Create(&address).Error; err != nil {
		return Catalog{}, err
	}

	partner := catalogrepo.DeliveryPartnerDTO{Name: "Vikram", Phone: "+91 9000000001"}
	if err := db.Create(&partner).Error; err != nil {
		return Catalog{}, err
	}

	return Catalog{
		UserID:          users[0].ID,
		OtherUserID:     users[1].ID,
		RestaurantID:    restaurants[0].ID,
		OtherRestaurant: restaurants[1].ID,
		MenuItemID:      items[0].ID,
		SecondItemID:    items[1].ID,
		OtherMenuItemID: items[2].ID,
		AddressID:       address.ID,
		PartnerID:       partner.ID,
	}, nil
}
