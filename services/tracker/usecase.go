package tracker

import (
	"context"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// TrackerUC defines the interface for tracking session business logic
type TrackerUC interface {
	// StartSession begins live location sharing for a trip
	StartSession(ctx context.Context, tripID string) (*models.SessionStatus, error)

	// StopSession ends live location sharing for a trip. Stopping an
	// already stopped session is a no-op.
	StopSession(ctx context.Context, tripID string) (*models.SessionStatus, error)

	// SessionStatus returns the current session status for a trip
	SessionStatus(ctx context.Context, tripID string) (*models.SessionStatus, error)

	// TripProgress fetches a fresh tracking snapshot and derives progress
	TripProgress(ctx context.Context, tripID string) (*models.TripProgress, error)

	// OptimizeRoute reorders remaining stops and returns refreshed progress
	OptimizeRoute(ctx context.Context, tripID string) (*models.TripProgress, error)

	// ActiveTrips fetches the dispatcher's active trips
	ActiveTrips(ctx context.Context, userID string) ([]*models.Trip, error)

	// Close stops all live sessions; used on agent shutdown
	Close(ctx context.Context) error
}
