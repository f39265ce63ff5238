package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

const (
	// earthRadiusKm is the mean radius of the Earth in kilometers
	earthRadiusKm = 6371.0

	// GeohashPrecision is the default precision used when bucketing samples
	GeohashPrecision uint = 7
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// CalculateDistance calculates the great-circle distance between two points
// in kilometers using the Haversine formula
func CalculateDistance(p1, p2 GeoPoint) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceMeters returns the great-circle distance between two points in meters
func DistanceMeters(p1, p2 GeoPoint) float64 {
	return CalculateDistance(p1, p2) * 1000.0
}

// WithinRadius reports whether two points are within radiusM meters of each other
func WithinRadius(p1, p2 GeoPoint, radiusM float64) bool {
	return DistanceMeters(p1, p2) <= radiusM
}

// EncodeGeohash converts a point to a geohash string at the default precision
func EncodeGeohash(p GeoPoint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) GeoPoint {
	lat, lng := geohash.Decode(hash)
	return GeoPoint{Latitude: lat, Longitude: lng}
}
