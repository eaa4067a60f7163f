// Package geo implements great-circle distance and the location trust checks
// a report must pass before it can touch a shop.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

// boundMargin widens search bounds so points right on the radius are never
// lost to the slightly different radius orb uses.
const boundMargin = 1.01

// Distance returns the haversine distance in meters between two points given in degrees.
func Distance(latA, lonA, latB, lonB float64) float64 {
	lat1 := degreesToRadians(latA)
	lat2 := degreesToRadians(latB)
	dLat := lat2 - lat1
	dLon := degreesToRadians(lonB - lonA)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// PointDistance is Distance over orb points (lon, lat).
func PointDistance(a, b orb.Point) float64 {
	return Distance(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// SearchBound returns a lat/lon box that contains every point within
// radiusMeters of center. It is a prefilter only.
func SearchBound(center orb.Point, radiusMeters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(center, radiusMeters*boundMargin)
}

// IsValidCoordinate reports whether lat/lon lie within the WGS84 ranges.
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// IsSuspiciousLocation flags positions that are almost certainly not a real
// GPS fix. Only the (0, 0) sentinel is flagged for now.
func IsSuspiciousLocation(lat, lon float64) bool {
	return lat == 0 && lon == 0
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
