package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

func newTestJournal(t *testing.T) (*JournalRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewJournalRepository(db), mock
}

func TestRecordSessionEvent(t *testing.T) {
	repo, mock := newTestJournal(t)

	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO tracker_session_events").
		WithArgs("sess-1", "trip-123", "session_started", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordSessionEvent(context.Background(), models.SessionJournalEntry{
		SessionID: "sess-1",
		TripID:    "trip-123",
		Event:     "session_started",
		At:        at,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSessionEvent_DBError(t *testing.T) {
	repo, mock := newTestJournal(t)

	mock.ExpectExec("INSERT INTO tracker_session_events").
		WillReturnError(assert.AnError)

	err := repo.RecordSessionEvent(context.Background(), models.SessionJournalEntry{
		SessionID: "sess-1",
		TripID:    "trip-123",
		Event:     "session_stopped",
		At:        time.Now().UTC(),
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordArrival(t *testing.T) {
	repo, mock := newTestJournal(t)

	arrivedAt := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO tracker_arrivals").
		WithArgs("trip-123", "ord-1", "Seaside Grocers", 61.4, "wdw1v3u", arrivedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordArrival(context.Background(), models.ArrivalEvent{
		TripID:         "trip-123",
		OrderID:        "ord-1",
		StoreName:      "Seaside Grocers",
		DistanceMeters: 61.4,
		Geohash:        "wdw1v3u",
		ArrivedAt:      arrivedAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
