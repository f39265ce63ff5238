package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	monas := GeoPoint{Latitude: -6.1754, Longitude: 106.8272}
	kotaTua := GeoPoint{Latitude: -6.1352, Longitude: 106.8133}

	distance := CalculateDistance(monas, kotaTua)

	// Roughly 4.7 km between the two landmarks
	assert.InDelta(t, 4.7, distance, 0.3)

	// Distance from a point to itself is zero
	assert.Zero(t, CalculateDistance(monas, monas))

	// Symmetric in its arguments
	assert.InDelta(t, distance, CalculateDistance(kotaTua, monas), 1e-9)
}

func TestWithinRadius(t *testing.T) {
	stop := GeoPoint{Latitude: -6.2000, Longitude: 106.8167}

	// One thousandth of a degree of latitude is about 111 meters
	near := GeoPoint{Latitude: -6.2008, Longitude: 106.8167}
	far := GeoPoint{Latitude: -6.2011, Longitude: 106.8167}

	assert.True(t, WithinRadius(stop, near, 100))
	assert.False(t, WithinRadius(stop, far, 100))
	assert.True(t, WithinRadius(stop, far, 150))
}

func TestGeohashRoundTrip(t *testing.T) {
	point := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}

	hash := EncodeGeohash(point)
	assert.Len(t, hash, int(GeohashPrecision))

	decoded := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, decoded.Latitude, 0.01)
	assert.InDelta(t, point.Longitude, decoded.Longitude, 0.01)
}
