package kernel

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint is used.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a position on Earth in decimal degrees.
//
// Example:
//
//	restaurant, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(restaurant) // GeoPoint(12.971600,77.594600)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates latitude in [-90, 90] and longitude in [-180, 180].
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate reports whether the point was built through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < minLatitude || lat > maxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, minLatitude, maxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if lon < minLongitude || lon > maxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, minLongitude, maxLongitude)
	}
	p.lon = lon
	return nil
}
