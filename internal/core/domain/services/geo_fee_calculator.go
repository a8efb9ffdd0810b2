package services

import (
	"math"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
	// PlaceholderDistanceKm is used for ETA estimation when either end has no coordinates.
	PlaceholderDistanceKm = 5.0
	// MinutesPerKm is the travel time assumed per kilometer.
	MinutesPerKm = 3.0
	// ETAWindowMinutes is the width of the delivery range reported to customers.
	ETAWindowMinutes = 5
)

// DefaultBaseDeliveryFee is the base of the distance-banded fee policy.
var DefaultBaseDeliveryFee = decimal.NewFromInt(40)

// GeoFeeCalculator holds the distance, fee and ETA rules.
//
// Example:
//
//	calc := services.NewGeoFeeCalculator()
//	km := calc.Distance(restaurant, address)
//	fee := calc.DeliveryFee(km, services.DefaultBaseDeliveryFee)
//	eta := calc.EstimatedDeliveryMinutes(km, 30)
type GeoFeeCalculator struct{}

// NewGeoFeeCalculator creates a GeoFeeCalculator.
func NewGeoFeeCalculator() GeoFeeCalculator {
	return GeoFeeCalculator{}
}

// Distance returns the great-circle distance between a and b in kilometers.
func (GeoFeeCalculator) Distance(a, b kernel.GeoPoint) float64 {
	dLat := degToRad(b.Lat() - a.Lat())
	dLon := degToRad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(a.Lat()))*math.Cos(degToRad(b.Lat()))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceOrPlaceholder measures between a and b, or returns PlaceholderDistanceKm when
// either point is missing.
func (c GeoFeeCalculator) DistanceOrPlaceholder(a, b *kernel.GeoPoint) float64 {
	if a == nil || b == nil {
		return PlaceholderDistanceKm
	}
	return c.Distance(*a, *b)
}

// DeliveryFee applies the banding policy: base up to 3 km, +10 up to 5 km, +20 up to 10 km,
// +30 beyond.
func (GeoFeeCalculator) DeliveryFee(distanceKm float64, base decimal.Decimal) decimal.Decimal {
	switch {
	case distanceKm <= 3:
		return base
	case distanceKm <= 5:
		return base.Add(decimal.NewFromInt(10))
	case distanceKm <= 10:
		return base.Add(decimal.NewFromInt(20))
	default:
		return base.Add(decimal.NewFromInt(30))
	}
}

// EstimatedDeliveryMinutes returns prepMinutes + ceil(distanceKm × 3).
func (GeoFeeCalculator) EstimatedDeliveryMinutes(distanceKm float64, prepMinutes int) int {
	return prepMinutes + int(math.Ceil(distanceKm*MinutesPerKm))
}

// DeliveryWindow returns the [eta-5, eta] range reported to customers.
func (GeoFeeCalculator) DeliveryWindow(etaMinutes int) (from, to int) {
	from = etaMinutes - ETAWindowMinutes
	if from < 0 {
		from = 0
	}
	return from, etaMinutes
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
