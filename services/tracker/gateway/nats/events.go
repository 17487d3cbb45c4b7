package nats

import (
	"context"

	"github.com/fleetops/dispatchtrack/internal/pkg/constants"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
	natspkg "github.com/fleetops/dispatchtrack/internal/pkg/nats"
)

// EventGateway publishes tracker events to the console's NATS stream
type EventGateway struct {
	client *natspkg.Client
}

// NewEventGateway creates a new event gateway
func NewEventGateway(client *natspkg.Client) *EventGateway {
	return &EventGateway{client: client}
}

// PublishSessionStatus publishes a session status snapshot. Consumers
// treat the stream as last-write-wins per trip.
func (g *EventGateway) PublishSessionStatus(ctx context.Context, status models.SessionStatus) error {
	return g.client.PublishJSON(constants.SubjectSessionStatus, status)
}

// PublishArrival publishes a one-shot storefront arrival event
func (g *EventGateway) PublishArrival(ctx context.Context, event models.ArrivalEvent) error {
	return g.client.PublishJSON(constants.SubjectTripArrived, event)
}
