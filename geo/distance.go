package geo

import (
	"math"

	"github.com/visitcacapava/checkin-api/schema"
)

// earthRadiusMeters - mean Earth radius used by the Haversine formula.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two WGS-84
// points using the Haversine formula. All catalog POIs sit inside one
// municipality, so no antimeridian or polar handling is needed.
func DistanceMeters(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadius reports whether b lies within radiusMeters of a.
func WithinRadius(a, b schema.Location, radiusMeters float64) bool {
	return DistanceMeters(a, b) <= radiusMeters
}
