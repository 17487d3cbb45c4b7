package models

import (
	"time"
)

// SessionState represents the lifecycle state of a tracking session.
// STOPPED is terminal; resuming requires a new session.
type SessionState string

const (
	SessionStateIdle    SessionState = "IDLE"
	SessionStateActive  SessionState = "ACTIVE"
	SessionStateStopped SessionState = "STOPPED"
)

// SessionStatus is the UI-facing view of a tracking session
type SessionStatus struct {
	SessionID    string       `json:"session_id"`
	TripID       string       `json:"trip_id"`
	State        SessionState `json:"state"`
	LastSampleAt *time.Time   `json:"last_sample_at,omitempty"`
	Arrived      bool         `json:"arrived"`
	LastError    string       `json:"last_error,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ArrivalEvent is emitted exactly once per entry into a stop's geofence
type ArrivalEvent struct {
	TripID         string    `json:"trip_id"`
	OrderID        string    `json:"order_id"`
	StoreName      string    `json:"store_name"`
	DistanceMeters float64   `json:"distance_meters"`
	Geohash        string    `json:"geohash"`
	ArrivedAt      time.Time `json:"arrived_at"`
}

// SessionJournalEntry is a durable audit record of a session lifecycle event
type SessionJournalEntry struct {
	SessionID string    `json:"session_id" db:"session_id"`
	TripID    string    `json:"trip_id" db:"trip_id"`
	Event     string    `json:"event" db:"event"`
	At        time.Time `json:"at" db:"at"`
}

// StartSessionRequest is the payload for starting a tracking session
type StartSessionRequest struct {
	TripID string `json:"trip_id" validate:"required"`
}
