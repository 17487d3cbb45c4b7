package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

func TestHaversineDistanceMeters(t *testing.T) {
	t.Run("Zero distance for identical points", func(t *testing.T) {
		p := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}
		assert.Equal(t, 0.0, HaversineDistanceMeters(p, p))
	})

	t.Run("Nearby storefront distance", func(t *testing.T) {
		mover := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}
		store := models.GeoPoint{Latitude: 16.1570, Longitude: 119.9810}

		d := HaversineDistanceMeters(mover, store)
		assert.InDelta(t, 70.0, d, 10.0)
		assert.Less(t, d, 100.0, "a sample at the storefront must fall inside the default radius")
	})

	t.Run("Cross-town distance", func(t *testing.T) {
		mover := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}
		store := models.GeoPoint{Latitude: 16.200, Longitude: 120.000}

		d := HaversineDistanceMeters(mover, store)
		assert.InDelta(t, 5260.0, d, 300.0)
		assert.Greater(t, d, 1000.0)
	})

	t.Run("Symmetric in argument order", func(t *testing.T) {
		a := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}
		b := models.GeoPoint{Latitude: 16.200, Longitude: 120.000}

		assert.Equal(t, HaversineDistanceMeters(a, b), HaversineDistanceMeters(b, a))
	})
}

func TestEncodeDecodeGeohash(t *testing.T) {
	point := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}

	hash := EncodeGeohash(point)
	assert.Len(t, hash, GeohashPrecision)

	decoded := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, decoded.Latitude, 0.01)
	assert.InDelta(t, point.Longitude, decoded.Longitude, 0.01)
}
