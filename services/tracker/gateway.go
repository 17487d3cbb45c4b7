package tracker

import (
	"context"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// FleetGW defines the interface for fleet backend operations
type FleetGW interface {
	// GetActiveTrips fetches the dispatcher's active trip snapshots
	GetActiveTrips(ctx context.Context, userID string) ([]*models.Trip, error)

	// GetTrackingSnapshot fetches the current stop list for a trip
	GetTrackingSnapshot(ctx context.Context, tripID string) (*models.TrackingSnapshot, error)

	// PushLocation pushes a position sample to the ingestion endpoint.
	// Delivery is fire-and-forget: the caller drops failed ticks.
	PushLocation(ctx context.Context, tripID string, sample models.PositionSample) error

	// OptimizeRoute asks the backend to reorder the remaining stops
	OptimizeRoute(ctx context.Context, tripID string) error
}

// EventGW defines the interface for event publications to the console
type EventGW interface {
	// PublishSessionStatus publishes the session status stream
	PublishSessionStatus(ctx context.Context, status models.SessionStatus) error

	// PublishArrival publishes a one-shot arrival event
	PublishArrival(ctx context.Context, event models.ArrivalEvent) error
}
