// Package positioning provides position sources for the tracking agent.
// A Source produces one-shot fixes; Watch turns any Source into a
// cancellable periodic sampling loop.
package positioning

import (
	"context"
	"errors"
	"time"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

var (
	// ErrPermissionDenied indicates the device refused location access.
	// This is terminal for a session; the dispatcher must re-start.
	ErrPermissionDenied = errors.New("position source: permission denied")

	// ErrUnavailable indicates the device cannot produce a fix
	ErrUnavailable = errors.New("position source: no fix available")

	// ErrTimeout indicates the device did not produce a fix in time
	ErrTimeout = errors.New("position source: timed out waiting for fix")
)

// DefaultPositionTimeout bounds a single CurrentPosition read so a dead
// device resolves to ErrTimeout instead of hanging the caller
const DefaultPositionTimeout = 10 * time.Second

// Source produces position samples for the mover
type Source interface {
	// CurrentPosition performs a single best-effort position read.
	// Implementations enforce an internal timeout when the context
	// carries no deadline.
	CurrentPosition(ctx context.Context) (models.PositionSample, error)
}

// SampleFunc receives each successful sample from a watch loop
type SampleFunc func(sample models.PositionSample)

// ErrorFunc receives each failed read from a watch loop
type ErrorFunc func(err error)
