package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

func TestEvaluateGeofence_InsideRadius(t *testing.T) {
	store := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}
	mover := models.GeoPoint{Latitude: 16.1570, Longitude: 119.9810}

	result := EvaluateGeofence(mover, store, 100)

	assert.True(t, result.Inside)
	assert.Less(t, result.DistanceMeters, 100.0)
	assert.Greater(t, result.DistanceMeters, 0.0)
}

func TestEvaluateGeofence_OutsideRadius(t *testing.T) {
	store := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}
	mover := models.GeoPoint{Latitude: 16.2000, Longitude: 120.0000}

	result := EvaluateGeofence(mover, store, 100)

	assert.False(t, result.Inside)
	assert.Greater(t, result.DistanceMeters, 1000.0)
}

func TestEvaluateGeofence_ExactCenter(t *testing.T) {
	store := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}

	result := EvaluateGeofence(store, store, 100)

	assert.True(t, result.Inside)
	assert.Equal(t, 0.0, result.DistanceMeters)
}

func TestEvaluateGeofence_NonPositiveRadiusUsesDefault(t *testing.T) {
	store := models.GeoPoint{Latitude: 16.1565, Longitude: 119.9806}
	mover := models.GeoPoint{Latitude: 16.1570, Longitude: 119.9810}

	withDefault := EvaluateGeofence(mover, store, 0)
	explicit := EvaluateGeofence(mover, store, DefaultGeofenceRadiusM)

	assert.Equal(t, explicit, withDefault)
	assert.True(t, withDefault.Inside)
}

func TestArrivalLatch_FiresOnceWhileInside(t *testing.T) {
	var latch arrivalLatch

	readings := []bool{false, true, true, true}
	fired := 0
	for _, inside := range readings {
		if latch.Observe(inside) {
			fired++
		}
	}

	assert.Equal(t, 1, fired)
	assert.True(t, latch.Inside())
}

func TestArrivalLatch_ReArmsAfterExit(t *testing.T) {
	var latch arrivalLatch

	// Drive past the store, circle the block, come back
	readings := []bool{false, true, true, false, false, true}
	fired := 0
	for _, inside := range readings {
		if latch.Observe(inside) {
			fired++
		}
	}

	assert.Equal(t, 2, fired)
}

func TestArrivalLatch_FirstReadingInsideFires(t *testing.T) {
	var latch arrivalLatch

	assert.True(t, latch.Observe(true))
	assert.False(t, latch.Observe(true))
}

func TestArrivalLatch_ResetReArms(t *testing.T) {
	var latch arrivalLatch

	assert.True(t, latch.Observe(true))
	latch.Reset()

	assert.False(t, latch.Inside())
	assert.True(t, latch.Observe(true))
}
