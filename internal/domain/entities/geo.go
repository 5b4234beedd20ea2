package entities

import (
	"math"

	domainerrors "care-connect.backend/internal/domain/errors"
)

const earthRadiusKm = 6371.0

// GeoPoint represents a validated longitude/latitude pair (GeoJSON order)
type GeoPoint struct {
	Type string  `json:"type"`
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
}

// NewGeoPoint creates a GeoPoint, rejecting out-of-range coordinates
func NewGeoPoint(lng, lat float64) (GeoPoint, error) {
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return GeoPoint{}, domainerrors.ErrInvalidCoordinates
	}
	return GeoPoint{Type: "Point", Lng: lng, Lat: lat}, nil
}

// DistanceKm returns the great-circle distance to another point using the haversine formula
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1 := p.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - p.Lat) * math.Pi / 180
	dLng := (other.Lng - p.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
