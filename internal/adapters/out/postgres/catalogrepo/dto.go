// Package catalogrepo reads the catalog tables (restaurants, menu items, addresses) the
// ordering core depends on, and writes the two derived restaurant rating fields.
package catalogrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// RestaurantDTO maps the restaurants table.
type RestaurantDTO struct {
	ID                 int64           `gorm:"primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Phone              string          `gorm:"type:varchar(32)"`
	ImageURL           string          `gorm:"type:text"`
	DeliveryFee        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MinOrderAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PreparationMinutes int             `gorm:"not null;default:30"`
	IsActive           bool            `gorm:"not null"`
	IsOpen             bool            `gorm:"not null"`
	Latitude           *float64
	Longitude          *float64
	Rating             decimal.Decimal `gorm:"type:numeric(2,1);not null;default:0"`
	TotalReviews       int             `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO maps the menu_items table.
type MenuItemDTO struct {
	ID           int64           `gorm:"primaryKey"`
	RestaurantID int64           `gorm:"not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL     string          `gorm:"type:text"`
	IsVeg        bool            `gorm:"not null"`
	IsAvailable  bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// AddressDTO maps the addresses table.
type AddressDTO struct {
	ID           int64  `gorm:"primaryKey"`
	UserID       int64  `gorm:"not null;index"`
	AddressLine1 string `gorm:"type:varchar(255);not null"`
	AddressLine2 string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100);not null"`
	State        string `gorm:"type:varchar(100);not null"`
	Pincode      string `gorm:"type:varchar(10);not null"`
	Latitude     *float64
	Longitude    *float64
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// UserDTO is the part of the users table the read side joins for reviewer names.
type UserDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// DeliveryPartnerDTO maps the delivery_partners table.
type DeliveryPartnerDTO struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(32);not null"`
}

func (DeliveryPartnerDTO) TableName() string {
	return "delivery_partners"
}

func restaurantToDomain(dto RestaurantDTO) (catalog.Restaurant, error) {
	location, err := geoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return catalog.Restaurant{}, err
	}

	return catalog.Restaurant{
		ID:                 dto.ID,
		Name:               dto.Name,
		Phone:              dto.Phone,
		ImageURL:           dto.ImageURL,
		DeliveryFee:        dto.DeliveryFee,
		MinOrderAmount:     dto.MinOrderAmount,
		PreparationMinutes: dto.PreparationMinutes,
		IsActive:           dto.IsActive,
		IsOpen:             dto.IsOpen,
		Location:           location,
	}, nil
}

func menuItemToDomain(dto MenuItemDTO) catalog.MenuItem {
	return catalog.MenuItem{
		ID:           dto.ID,
		RestaurantID: dto.RestaurantID,
		Name:         dto.Name,
		Price:        dto.Price,
		IsAvailable:  dto.IsAvailable,
	}
}

func addressToDomain(dto AddressDTO) (catalog.Address, error) {
	location, err := geoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return catalog.Address{}, err
	}

	return catalog.Address{
		ID:       dto.ID,
		UserID:   dto.UserID,
		Line1:    dto.AddressLine1,
		Line2:    dto.AddressLine2,
		City:     dto.City,
		State:    dto.State,
		Pincode:  dto.Pincode,
		Location: location,
	}, nil
}

// geoPoint returns nil unless both coordinates are stored.
func geoPoint(lat, lon *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lon == nil {
		return nil, nil //nolint:nilnil // a missing location is not an error
	}
	point, err := kernel.NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
