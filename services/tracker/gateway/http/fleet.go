package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"

	pkghttp "github.com/fleetops/dispatchtrack/internal/pkg/http"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
	"github.com/fleetops/dispatchtrack/internal/pkg/retry"
)

// FleetGateway talks to the fleet backend's REST API
type FleetGateway struct {
	client  *pkghttp.Client
	retrier *retry.Retrier
}

// NewFleetGateway creates a new fleet backend gateway
func NewFleetGateway(client *pkghttp.Client) *FleetGateway {
	return &FleetGateway{
		client:  client,
		retrier: retry.NewWithDefaults(),
	}
}

// apiResponse is the fleet backend's response envelope
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// GetActiveTrips fetches the dispatcher's active trips. Read-only and
// safe to retry.
func (g *FleetGateway) GetActiveTrips(ctx context.Context, userID string) ([]*models.Trip, error) {
	query := url.Values{}
	query.Set("user_id", userID)

	var trips []*models.Trip
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		path := "/v1/trips/active?" + query.Encode()
		return g.doJSON(ctx, nethttp.MethodGet, path, nil, &trips)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active trips: %w", err)
	}
	return trips, nil
}

// GetTrackingSnapshot fetches the current stop list for a trip
func (g *FleetGateway) GetTrackingSnapshot(ctx context.Context, tripID string) (*models.TrackingSnapshot, error) {
	var snapshot models.TrackingSnapshot
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		path := fmt.Sprintf("/v1/trips/%s/tracking", tripID)
		return g.doJSON(ctx, nethttp.MethodGet, path, nil, &snapshot)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking snapshot: %w", err)
	}
	return &snapshot, nil
}

// PushLocation pushes one position sample to the ingestion endpoint.
// Deliberately not retried: the next tick supersedes a dropped one, and
// a late retry would deliver a stale position.
func (g *FleetGateway) PushLocation(ctx context.Context, tripID string, sample models.PositionSample) error {
	path := fmt.Sprintf("/v1/trips/%s/location", tripID)
	if err := g.doJSON(ctx, nethttp.MethodPost, path, sample, nil); err != nil {
		return fmt.Errorf("failed to push location: %w", err)
	}
	return nil
}

// OptimizeRoute asks the backend to reorder the remaining stops. Not
// retried either; the dispatcher triggers it explicitly and can retry
// from the console.
func (g *FleetGateway) OptimizeRoute(ctx context.Context, tripID string) error {
	path := fmt.Sprintf("/v1/trips/%s/optimize", tripID)
	if err := g.doJSON(ctx, nethttp.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to optimize route: %w", err)
	}
	return nil
}

// doJSON performs one API call against the fleet backend
func (g *FleetGateway) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, g.client.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.client.APIKey != "" {
		req.Header.Set("X-API-Key", g.client.APIKey)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
