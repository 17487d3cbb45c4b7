package tracker

import "errors"

var (
	// ErrSessionActive is returned when a session already exists for a trip
	ErrSessionActive = errors.New("a tracking session is already active for this trip")

	// ErrSessionNotFound is returned when no session exists for a trip
	ErrSessionNotFound = errors.New("no tracking session exists for this trip")
)
