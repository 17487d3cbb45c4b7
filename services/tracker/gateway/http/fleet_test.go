package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/fleetops/dispatchtrack/internal/pkg/http"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

func newTestGateway(server *httptest.Server) *FleetGateway {
	client := pkghttp.NewClient(server.URL, "test-key", 5*time.Second)
	return NewFleetGateway(client)
}

func writeEnvelope(w nethttp.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func TestGetTrackingSnapshot(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/v1/trips/trip-123/tracking", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		writeEnvelope(w, models.TrackingSnapshot{
			TripID: "trip-123",
			Stops: []models.Stop{
				{OrderID: "ord-1", SequenceNo: 1, Status: models.StopStatusInTransit, StoreName: "Seaside Grocers"},
			},
			TotalStops: 1,
		})
	}))
	defer server.Close()

	gw := newTestGateway(server)
	snapshot, err := gw.GetTrackingSnapshot(context.Background(), "trip-123")

	require.NoError(t, err)
	assert.Equal(t, "trip-123", snapshot.TripID)
	require.Len(t, snapshot.Stops, 1)
	assert.Equal(t, "ord-1", snapshot.Stops[0].OrderID)
}

func TestGetActiveTrips_RetriesOnServerError(t *testing.T) {
	var calls int64
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			w.WriteHeader(nethttp.StatusInternalServerError)
			return
		}
		assert.Equal(t, "disp-1", r.URL.Query().Get("user_id"))
		writeEnvelope(w, []models.Trip{
			{ID: "trip-123", Status: models.TripStatusInTransit},
		})
	}))
	defer server.Close()

	gw := newTestGateway(server)
	trips, err := gw.GetActiveTrips(context.Background(), "disp-1")

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "trip-123", trips[0].ID)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestGetActiveTrips_EscapesUserID(t *testing.T) {
	rawID := "disp 1&user_id=other"
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, rawID, r.URL.Query().Get("user_id"))
		writeEnvelope(w, []models.Trip{})
	}))
	defer server.Close()

	gw := newTestGateway(server)
	_, err := gw.GetActiveTrips(context.Background(), rawID)

	require.NoError(t, err)
}

func TestPushLocation(t *testing.T) {
	var received models.PositionSample
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/v1/trips/trip-123/location", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(nethttp.StatusAccepted)
	}))
	defer server.Close()

	gw := newTestGateway(server)
	sample := models.PositionSample{
		Latitude:  16.1565,
		Longitude: 119.9806,
		Timestamp: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}

	require.NoError(t, gw.PushLocation(context.Background(), "trip-123", sample))
	assert.InDelta(t, 16.1565, received.Latitude, 1e-9)
	assert.InDelta(t, 119.9806, received.Longitude, 1e-9)
}

func TestPushLocation_DoesNotRetry(t *testing.T) {
	var calls int64
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	gw := newTestGateway(server)
	err := gw.PushLocation(context.Background(), "trip-123", models.PositionSample{Latitude: 1, Longitude: 1})

	assert.Error(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestOptimizeRoute(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/v1/trips/trip-123/optimize", r.URL.Path)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	gw := newTestGateway(server)
	require.NoError(t, gw.OptimizeRoute(context.Background(), "trip-123"))
}

func TestOptimizeRoute_BackendFailure(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusConflict)
	}))
	defer server.Close()

	gw := newTestGateway(server)
	err := gw.OptimizeRoute(context.Background(), "trip-123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "409")
}
