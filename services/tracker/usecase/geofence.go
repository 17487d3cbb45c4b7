package usecase

import (
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
	"github.com/fleetops/dispatchtrack/internal/utils"
)

// DefaultGeofenceRadiusM is the radius treated as "at the storefront"
const DefaultGeofenceRadiusM = 100.0

// EvaluateGeofence decides whether the mover is inside a fixed-radius
// circle around the target. Distance is great-circle, not planar; store
// separations within a municipality are small but not negligible.
// Pure function, safe for concurrent use.
func EvaluateGeofence(mover, target models.GeoPoint, radiusMeters float64) models.GeofenceResult {
	if radiusMeters <= 0 {
		radiusMeters = DefaultGeofenceRadiusM
	}

	distance := utils.HaversineDistanceMeters(mover, target)
	return models.GeofenceResult{
		Inside:         distance <= radiusMeters,
		DistanceMeters: distance,
	}
}

// arrivalLatch debounces geofence membership into one-shot arrival
// signals. It fires only on a false-to-true edge and re-arms when the
// mover leaves the fence, so loitering inside never re-fires.
type arrivalLatch struct {
	inside bool
}

// Observe feeds the latch one membership reading and reports whether an
// arrival fired on this reading
func (l *arrivalLatch) Observe(inside bool) bool {
	fired := inside && !l.inside
	l.inside = inside
	return fired
}

// Inside reports the latch's current membership state
func (l *arrivalLatch) Inside() bool {
	return l.inside
}

// Reset re-arms the latch, e.g. when the current stop changes
func (l *arrivalLatch) Reset() {
	l.inside = false
}
