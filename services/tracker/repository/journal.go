package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// JournalRepository implements the tracker.JournalRepo interface on the
// delivery journal database
type JournalRepository struct {
	db *sqlx.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// RecordSessionEvent appends one session lifecycle event to the journal
func (r *JournalRepository) RecordSessionEvent(ctx context.Context, entry models.SessionJournalEntry) error {
	query := `
		INSERT INTO tracker_session_events (session_id, trip_id, event, at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, entry.SessionID, entry.TripID, entry.Event, entry.At); err != nil {
		return fmt.Errorf("failed to record session event: %w", err)
	}
	return nil
}

// RecordArrival appends one storefront arrival to the journal
func (r *JournalRepository) RecordArrival(ctx context.Context, event models.ArrivalEvent) error {
	query := `
		INSERT INTO tracker_arrivals (trip_id, order_id, store_name, distance_meters, geohash, arrived_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		event.TripID,
		event.OrderID,
		event.StoreName,
		event.DistanceMeters,
		event.Geohash,
		event.ArrivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record arrival: %w", err)
	}
	return nil
}
