package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/kbajaj/emissions-backend-go/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used for all distance conversions
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// CorridorDistanceKm returns the great-circle length in kilometers of the
// corridor between two country centroids. Either endpoint missing from the
// metadata yields 0; corridors to unknown territories simply render without
// a length.
func CorridorDistanceKm(meta models.CountryMetadata, fromISO3, toISO3 string) float64 {
	from, ok := meta[fromISO3]
	if !ok {
		return 0
	}
	to, ok := meta[toISO3]
	if !ok {
		return 0
	}
	return HaversineDistance(from.Lat, from.Lng, to.Lat, to.Lng) / 1000.0
}
