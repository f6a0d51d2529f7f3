package pricing

import (
	"hotelPricing/domain"
	"math"
)

// DistanceCalculator returns the distance in km between two points.
type DistanceCalculator interface {
	DistanceKm(from, to domain.GeoPoint) float64
}

const earthRadiusKm = 6371.0

// HaversineDistance is the great-circle distance on a spherical earth.
type HaversineDistance struct{}

func (HaversineDistance) DistanceKm(from, to domain.GeoPoint) float64 {
	lat1 := from.Lat * math.Pi / 180.0
	lat2 := to.Lat * math.Pi / 180.0
	dLat := (to.Lat - from.Lat) * math.Pi / 180.0
	dLon := (to.Lon - from.Lon) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FixedDistance reports the same distance for every pair.
type FixedDistance float64

func (d FixedDistance) DistanceKm(_, _ domain.GeoPoint) float64 {
	return float64(d)
}
