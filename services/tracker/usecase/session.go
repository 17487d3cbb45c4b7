package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/dispatchtrack/internal/pkg/logger"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
	"github.com/fleetops/dispatchtrack/internal/utils"
	"github.com/fleetops/dispatchtrack/services/tracker"
	"github.com/fleetops/dispatchtrack/services/tracker/positioning"
)

// session holds the mutable state of one live tracking session. It is
// only ever mutated under the usecase mutex.
type session struct {
	id           string
	tripID       string
	state        models.SessionState
	lastSampleAt *time.Time
	lastErr      string
	currentStop  *models.Stop
	latch        arrivalLatch
	watch        *positioning.WatchHandle
}

// statusLocked builds a UI-facing status snapshot. Callers must hold
// the usecase mutex.
func (s *session) statusLocked() models.SessionStatus {
	status := models.SessionStatus{
		SessionID: s.id,
		TripID:    s.tripID,
		State:     s.state,
		Arrived:   s.latch.Inside(),
		LastError: s.lastErr,
		UpdatedAt: models.Now(),
	}
	if s.lastSampleAt != nil {
		ts := *s.lastSampleAt
		status.LastSampleAt = &ts
	}
	return status
}

// TrackerUC implements the tracker.TrackerUC interface
type TrackerUC struct {
	cfg     *models.Config
	source  positioning.Source
	fleet   tracker.FleetGW
	events  tracker.EventGW
	cache   tracker.CacheRepo
	journal tracker.JournalRepo // optional; nil disables the audit journal

	mu       sync.Mutex
	sessions map[string]*session
}

// NewTrackerUC creates a new tracker use case
func NewTrackerUC(
	cfg *models.Config,
	source positioning.Source,
	fleet tracker.FleetGW,
	events tracker.EventGW,
	cache tracker.CacheRepo,
	journal tracker.JournalRepo,
) *TrackerUC {
	return &TrackerUC{
		cfg:      cfg,
		source:   source,
		fleet:    fleet,
		events:   events,
		cache:    cache,
		journal:  journal,
		sessions: make(map[string]*session),
	}
}

// sampleInterval returns the configured sampling cadence
func (uc *TrackerUC) sampleInterval() time.Duration {
	ms := uc.cfg.Tracker.SampleIntervalMs
	if ms <= 0 {
		ms = 5000
	}
	return time.Duration(ms) * time.Millisecond
}

// StartSession begins live location sharing for a trip
func (uc *TrackerUC) StartSession(ctx context.Context, tripID string) (*models.SessionStatus, error) {
	uc.mu.Lock()
	if existing := uc.sessions[tripID]; existing != nil && existing.state != models.SessionStateStopped {
		uc.mu.Unlock()
		return nil, tracker.ErrSessionActive
	}
	s := &session{
		id:     uuid.New().String(),
		tripID: tripID,
		state:  models.SessionStateIdle,
	}
	uc.sessions[tripID] = s
	uc.mu.Unlock()

	// Seed the current stop so the first samples can be geofenced.
	// A failed snapshot is tolerated; the next progress refresh fills it.
	if snapshot, err := uc.fleet.GetTrackingSnapshot(ctx, tripID); err != nil {
		logger.Warn("Failed to fetch tracking snapshot at session start",
			logger.String("trip_id", tripID),
			logger.Err(err))
	} else {
		uc.mu.Lock()
		s.currentStop = CurrentStop(snapshot.Stops)
		uc.mu.Unlock()
	}

	// One-shot read to seed the session before the watch loop starts
	seed, err := uc.source.CurrentPosition(ctx)
	switch {
	case errors.Is(err, positioning.ErrPermissionDenied):
		uc.removeSession(s)
		uc.recordJournal(s, "start_denied")
		return nil, fmt.Errorf("cannot start tracking session: %w", err)
	case err != nil:
		// Non-fatal; the watch loop retries every tick
		logger.Warn("Initial position read failed",
			logger.String("trip_id", tripID),
			logger.Err(err))
	default:
		// The seed read may have blocked long enough for a concurrent
		// StopSession to land; Stopped is terminal and must not be
		// overwritten, and a stopped session gets no seed push.
		uc.mu.Lock()
		if uc.sessions[tripID] != s || s.state == models.SessionStateStopped {
			status := s.statusLocked()
			uc.mu.Unlock()
			return &status, nil
		}
		uc.mu.Unlock()

		if err := uc.fleet.PushLocation(ctx, tripID, seed); err != nil {
			uc.removeSession(s)
			return nil, fmt.Errorf("failed to push initial position: %w", err)
		}

		uc.mu.Lock()
		if uc.sessions[tripID] != s || s.state == models.SessionStateStopped {
			status := s.statusLocked()
			uc.mu.Unlock()
			return &status, nil
		}
		uc.applySampleLocked(s, seed)
		s.state = models.SessionStateActive
		uc.mu.Unlock()
		uc.storeSample(s, seed)
	}

	// Same race on the no-seed path: don't start a watch loop for a
	// session that was stopped while starting up
	uc.mu.Lock()
	if uc.sessions[tripID] != s || s.state == models.SessionStateStopped {
		status := s.statusLocked()
		uc.mu.Unlock()
		return &status, nil
	}
	uc.mu.Unlock()

	handle := positioning.Watch(uc.source, uc.sampleInterval(),
		func(sample models.PositionSample) { uc.handleSample(s, sample) },
		func(err error) { uc.handleWatchError(s, err) })

	uc.mu.Lock()
	if uc.sessions[s.tripID] != s || s.state == models.SessionStateStopped {
		// Stopped while starting up; don't leak the watch loop
		status := s.statusLocked()
		uc.mu.Unlock()
		handle.Cancel()
		return &status, nil
	}
	s.watch = handle
	status := s.statusLocked()
	uc.mu.Unlock()

	uc.publishStatus(status)
	uc.recordJournal(s, "session_started")
	logger.Info("Location sharing started",
		logger.String("trip_id", tripID),
		logger.String("session_id", s.id),
		logger.String("state", string(status.State)))

	return &status, nil
}

// StopSession ends live location sharing for a trip
func (uc *TrackerUC) StopSession(ctx context.Context, tripID string) (*models.SessionStatus, error) {
	uc.mu.Lock()
	s := uc.sessions[tripID]
	if s == nil {
		uc.mu.Unlock()
		return nil, tracker.ErrSessionNotFound
	}
	if s.state == models.SessionStateStopped {
		// Idempotent no-op
		status := s.statusLocked()
		uc.mu.Unlock()
		return &status, nil
	}
	s.state = models.SessionStateStopped
	handle := s.watch
	s.watch = nil
	status := s.statusLocked()
	uc.mu.Unlock()

	// After Cancel returns, no further sample or error callbacks fire.
	// Late push completions are discarded by the state check.
	if handle != nil {
		handle.Cancel()
	}

	uc.publishStatus(status)
	uc.recordJournal(s, "session_stopped")
	logger.Info("Location sharing stopped",
		logger.String("trip_id", tripID),
		logger.String("session_id", s.id))

	return &status, nil
}

// SessionStatus returns the current session status for a trip
func (uc *TrackerUC) SessionStatus(ctx context.Context, tripID string) (*models.SessionStatus, error) {
	uc.mu.Lock()
	if s := uc.sessions[tripID]; s != nil {
		status := s.statusLocked()
		uc.mu.Unlock()
		return &status, nil
	}
	uc.mu.Unlock()

	// Fall back to the cache mirror; a restarted console may ask about
	// a session owned by a previous agent process.
	status, err := uc.cache.GetSessionStatus(ctx, tripID)
	if err != nil {
		return nil, tracker.ErrSessionNotFound
	}
	return status, nil
}

// TripProgress fetches a fresh tracking snapshot and derives progress
func (uc *TrackerUC) TripProgress(ctx context.Context, tripID string) (*models.TripProgress, error) {
	snapshot, err := uc.fleet.GetTrackingSnapshot(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking data: %w", err)
	}

	progress := BuildTripProgress(tripID, snapshot.Stops)
	uc.refreshCurrentStop(tripID, progress.CurrentStop)

	return &progress, nil
}

// OptimizeRoute reorders remaining stops and returns refreshed progress.
// On failure the existing stop order is left untouched.
func (uc *TrackerUC) OptimizeRoute(ctx context.Context, tripID string) (*models.TripProgress, error) {
	if err := uc.fleet.OptimizeRoute(ctx, tripID); err != nil {
		return nil, fmt.Errorf("route optimization failed: %w", err)
	}
	// Forced refresh so the console sees the new ordering immediately
	return uc.TripProgress(ctx, tripID)
}

// ActiveTrips fetches the dispatcher's active trips
func (uc *TrackerUC) ActiveTrips(ctx context.Context, userID string) ([]*models.Trip, error) {
	trips, err := uc.fleet.GetActiveTrips(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active trips: %w", err)
	}
	return trips, nil
}

// Close stops all live sessions
func (uc *TrackerUC) Close(ctx context.Context) error {
	uc.mu.Lock()
	tripIDs := make([]string, 0, len(uc.sessions))
	for tripID := range uc.sessions {
		tripIDs = append(tripIDs, tripID)
	}
	uc.mu.Unlock()

	for _, tripID := range tripIDs {
		if _, err := uc.StopSession(ctx, tripID); err != nil && !errors.Is(err, tracker.ErrSessionNotFound) {
			logger.Warn("Failed to stop session during shutdown",
				logger.String("trip_id", tripID),
				logger.Err(err))
		}
	}
	return nil
}

// handleSample processes one successful position read from the watch loop
func (uc *TrackerUC) handleSample(s *session, sample models.PositionSample) {
	if err := sample.Validate(); err != nil {
		logger.Warn("Dropping out-of-range position sample",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
		return
	}

	uc.mu.Lock()
	if uc.sessions[s.tripID] != s || s.state == models.SessionStateStopped {
		uc.mu.Unlock()
		return
	}

	// Push to the ingestion endpoint off the sampling loop; completions
	// may arrive out of order and are reconciled in pushSample. Only a
	// live session gets to open an ingestion request.
	go uc.pushSample(s, sample)

	var arrival *models.ArrivalEvent
	if s.currentStop != nil && s.currentStop.StoreLocation != nil {
		result := EvaluateGeofence(sample.Point(), *s.currentStop.StoreLocation, uc.cfg.Tracker.GeofenceRadiusM)
		if s.latch.Observe(result.Inside) {
			arrival = &models.ArrivalEvent{
				TripID:         s.tripID,
				OrderID:        s.currentStop.OrderID,
				StoreName:      s.currentStop.StoreName,
				DistanceMeters: result.DistanceMeters,
				Geohash:        utils.EncodeGeohash(sample.Point()),
				ArrivedAt:      models.Now(),
			}
		}
	}
	status := s.statusLocked()
	uc.mu.Unlock()

	uc.storeSample(s, sample)
	uc.publishStatus(status)

	if arrival != nil {
		uc.emitArrival(s, *arrival)
	}
}

// pushSample delivers one sample to the backend. A dropped tick is
// acceptable; the next tick supersedes it.
func (uc *TrackerUC) pushSample(s *session, sample models.PositionSample) {
	// Re-check before opening the request: the session may have been
	// stopped between the tick callback and this goroutine running
	uc.mu.Lock()
	if uc.sessions[s.tripID] != s || s.state == models.SessionStateStopped {
		uc.mu.Unlock()
		return
	}
	uc.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), uc.sampleInterval())
	defer cancel()

	err := uc.fleet.PushLocation(ctx, s.tripID, sample)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Discard completions for sessions that are no longer current
	if uc.sessions[s.tripID] != s || s.state == models.SessionStateStopped {
		return
	}

	if err != nil {
		logger.Warn("Location push failed; dropping tick",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
		return
	}

	uc.applySampleLocked(s, sample)
	if s.state == models.SessionStateIdle {
		// First successful push activates a session that started
		// without a seed fix
		s.state = models.SessionStateActive
		s.lastErr = ""
	}
}

// applySampleLocked records a successfully pushed sample. lastSampleAt
// only moves forward; an out-of-order completion never rewinds it.
func (uc *TrackerUC) applySampleLocked(s *session, sample models.PositionSample) {
	if s.lastSampleAt == nil || sample.Timestamp.After(*s.lastSampleAt) {
		ts := sample.Timestamp
		s.lastSampleAt = &ts
	}
}

// handleWatchError processes one failed read from the watch loop
func (uc *TrackerUC) handleWatchError(s *session, err error) {
	if errors.Is(err, positioning.ErrPermissionDenied) {
		// Terminal; the dispatcher must re-start the session
		go uc.failSession(s, err)
		return
	}

	// Transient: the next tick is a fresh, independent attempt
	logger.Debug("Position read failed; retrying next tick",
		logger.String("trip_id", s.tripID),
		logger.Err(err))
}

// failSession tears down a session after a terminal position error.
// Runs on its own goroutine: cancelling the watch from inside a watch
// callback would deadlock.
func (uc *TrackerUC) failSession(s *session, cause error) {
	uc.mu.Lock()
	if uc.sessions[s.tripID] != s || s.state == models.SessionStateStopped {
		uc.mu.Unlock()
		return
	}
	s.lastErr = cause.Error()
	if s.state == models.SessionStateActive {
		s.state = models.SessionStateStopped
	} else {
		// Never activated; drop it so the dispatcher can retry.
		// The error stays visible through the cache mirror.
		delete(uc.sessions, s.tripID)
	}
	handle := s.watch
	s.watch = nil
	status := s.statusLocked()
	uc.mu.Unlock()

	if handle != nil {
		handle.Cancel()
	}

	uc.publishStatus(status)
	uc.recordJournal(s, "session_failed")
	logger.Error("Tracking session failed",
		logger.String("trip_id", s.tripID),
		logger.String("session_id", s.id),
		logger.Err(cause))
}

// refreshCurrentStop updates the live session's geofence target after a
// snapshot refresh. A changed stop re-arms the arrival latch.
func (uc *TrackerUC) refreshCurrentStop(tripID string, current *models.Stop) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.sessions[tripID]
	if s == nil || s.state == models.SessionStateStopped {
		return
	}

	switch {
	case current == nil:
		s.currentStop = nil
		s.latch.Reset()
	case s.currentStop == nil || s.currentStop.OrderID != current.OrderID:
		stop := *current
		s.currentStop = &stop
		s.latch.Reset()
	default:
		stop := *current
		s.currentStop = &stop
	}
}

// storeSample mirrors a sample into the local cache, best effort
func (uc *TrackerUC) storeSample(s *session, sample models.PositionSample) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := uc.cache.SaveLastPosition(ctx, s.tripID, sample); err != nil {
		logger.Warn("Failed to cache last position",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
	}
	if err := uc.cache.AppendHistory(ctx, s.tripID, sample); err != nil {
		logger.Warn("Failed to append position history",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
	}
}

// publishStatus pushes a status snapshot to the console stream and the
// cache mirror, best effort
func (uc *TrackerUC) publishStatus(status models.SessionStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := uc.events.PublishSessionStatus(ctx, status); err != nil {
		logger.Warn("Failed to publish session status",
			logger.String("trip_id", status.TripID),
			logger.Err(err))
	}
	if err := uc.cache.SaveSessionStatus(ctx, status); err != nil {
		logger.Warn("Failed to mirror session status",
			logger.String("trip_id", status.TripID),
			logger.Err(err))
	}
}

// emitArrival publishes a one-shot arrival notification
func (uc *TrackerUC) emitArrival(s *session, event models.ArrivalEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	logger.Info("Arrived at store",
		logger.String("trip_id", event.TripID),
		logger.String("store_name", event.StoreName),
		logger.Float64("distance_m", event.DistanceMeters))

	if err := uc.events.PublishArrival(ctx, event); err != nil {
		logger.Warn("Failed to publish arrival event",
			logger.String("trip_id", event.TripID),
			logger.Err(err))
	}
	if uc.journal != nil {
		if err := uc.journal.RecordArrival(ctx, event); err != nil {
			logger.Warn("Failed to journal arrival",
				logger.String("trip_id", event.TripID),
				logger.Err(err))
		}
	}
}

// recordJournal writes a session lifecycle audit row, best effort
func (uc *TrackerUC) recordJournal(s *session, event string) {
	if uc.journal == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	entry := models.SessionJournalEntry{
		SessionID: s.id,
		TripID:    s.tripID,
		Event:     event,
		At:        models.Now(),
	}
	if err := uc.journal.RecordSessionEvent(ctx, entry); err != nil {
		logger.Warn("Failed to journal session event",
			logger.String("trip_id", s.tripID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// removeSession drops a session that never got off the ground
func (uc *TrackerUC) removeSession(s *session) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.sessions[s.tripID] == s {
		delete(uc.sessions, s.tripID)
	}
}
