package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatchtrack/internal/pkg/database"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

func newTestCache(t *testing.T) (*CacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Close() })

	return NewCacheRepository(client, 5, time.Hour), mr
}

func TestSaveAndGetLastPosition(t *testing.T) {
	repo, _ := newTestCache(t)
	ctx := context.Background()

	speed := 8.3
	sample := models.PositionSample{
		Latitude:  16.1565,
		Longitude: 119.9806,
		Timestamp: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		SpeedMps:  &speed,
	}

	require.NoError(t, repo.SaveLastPosition(ctx, "trip-123", sample))

	got, err := repo.GetLastPosition(ctx, "trip-123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 16.1565, got.Latitude, 1e-9)
	assert.InDelta(t, 119.9806, got.Longitude, 1e-9)
	assert.True(t, sample.Timestamp.Equal(got.Timestamp))
	require.NotNil(t, got.SpeedMps)
	assert.InDelta(t, 8.3, *got.SpeedMps, 1e-9)
	assert.Nil(t, got.AccuracyM)
}

func TestGetLastPosition_Missing(t *testing.T) {
	repo, _ := newTestCache(t)

	got, err := repo.GetLastPosition(context.Background(), "trip-nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLastPosition_CarriesGeohash(t *testing.T) {
	repo, mr := newTestCache(t)
	ctx := context.Background()

	sample := models.PositionSample{
		Latitude:  16.1565,
		Longitude: 119.9806,
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, repo.SaveLastPosition(ctx, "trip-123", sample))

	hash := mr.HGet("tracker:trip:trip-123:last", "geohash")
	assert.Len(t, hash, 7)
}

func TestAppendHistory_TrimsToLimit(t *testing.T) {
	repo, _ := newTestCache(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		sample := models.PositionSample{
			Latitude:  16.15 + float64(i)*0.001,
			Longitude: 119.98,
			Timestamp: base.Add(time.Duration(i) * 5 * time.Second),
		}
		require.NoError(t, repo.AppendHistory(ctx, "trip-123", sample))
	}

	history, err := repo.GetHistory(ctx, "trip-123", 10)
	require.NoError(t, err)
	require.Len(t, history, 5)

	// Newest first
	assert.True(t, base.Add(35*time.Second).Equal(history[0].Timestamp))
	assert.True(t, base.Add(15*time.Second).Equal(history[4].Timestamp))
}

func TestGetHistory_RespectsRequestedLimit(t *testing.T) {
	repo, _ := newTestCache(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		sample := models.PositionSample{Latitude: 16.15, Longitude: 119.98, Timestamp: time.Now().UTC()}
		require.NoError(t, repo.AppendHistory(ctx, "trip-123", sample))
	}

	history, err := repo.GetHistory(ctx, "trip-123", 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestSessionStatusMirror(t *testing.T) {
	repo, _ := newTestCache(t)
	ctx := context.Background()

	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	status := models.SessionStatus{
		SessionID:    "sess-1",
		TripID:       "trip-123",
		State:        models.SessionStateActive,
		LastSampleAt: &ts,
		Arrived:      true,
		UpdatedAt:    ts,
	}

	require.NoError(t, repo.SaveSessionStatus(ctx, status))

	got, err := repo.GetSessionStatus(ctx, "trip-123")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, models.SessionStateActive, got.State)
	assert.True(t, got.Arrived)
	require.NotNil(t, got.LastSampleAt)
	assert.True(t, ts.Equal(*got.LastSampleAt))
}

func TestSessionStatusMirror_Expires(t *testing.T) {
	repo, mr := newTestCache(t)
	ctx := context.Background()

	status := models.SessionStatus{SessionID: "sess-1", TripID: "trip-123", State: models.SessionStateStopped}
	require.NoError(t, repo.SaveSessionStatus(ctx, status))

	mr.FastForward(2 * time.Hour)

	_, err := repo.GetSessionStatus(ctx, "trip-123")
	assert.Error(t, err)
}
