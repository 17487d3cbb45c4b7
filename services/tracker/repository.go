package tracker

import (
	"context"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// CacheRepo defines the interface for the agent's local position cache
type CacheRepo interface {
	// SaveLastPosition stores the most recent sample for a trip
	SaveLastPosition(ctx context.Context, tripID string, sample models.PositionSample) error

	// GetLastPosition returns the most recent sample for a trip
	GetLastPosition(ctx context.Context, tripID string) (*models.PositionSample, error)

	// AppendHistory appends a sample to the trip's breadcrumb history
	AppendHistory(ctx context.Context, tripID string, sample models.PositionSample) error

	// GetHistory returns up to limit recent samples, newest first
	GetHistory(ctx context.Context, tripID string, limit int) ([]models.PositionSample, error)

	// SaveSessionStatus mirrors the session status for console polling
	SaveSessionStatus(ctx context.Context, status models.SessionStatus) error

	// GetSessionStatus returns the mirrored session status for a trip
	GetSessionStatus(ctx context.Context, tripID string) (*models.SessionStatus, error)
}

// JournalRepo defines the interface for the durable delivery journal
type JournalRepo interface {
	// RecordSessionEvent records a session lifecycle event
	RecordSessionEvent(ctx context.Context, entry models.SessionJournalEntry) error

	// RecordArrival records an arrival event
	RecordArrival(ctx context.Context, event models.ArrivalEvent) error
}
