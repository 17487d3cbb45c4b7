package models

import (
	"errors"
	"time"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the point lies within valid WGS84 bounds
func (p GeoPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// PositionSample is a single position fix produced by a position source.
// Speed and accuracy are optional; not every fix carries them.
type PositionSample struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	SpeedMps  *float64  `json:"speed,omitempty"`
	AccuracyM *float64  `json:"accuracy,omitempty"`
}

// Point returns the sample's coordinates as a GeoPoint
func (s PositionSample) Point() GeoPoint {
	return GeoPoint{Latitude: s.Latitude, Longitude: s.Longitude}
}

// Validate checks the sample's coordinates
func (s PositionSample) Validate() error {
	return s.Point().Validate()
}

// GeofenceResult is the outcome of evaluating a position against a
// circular geofence. It is transient and never persisted.
type GeofenceResult struct {
	Inside         bool    `json:"inside"`
	DistanceMeters float64 `json:"distance_meters"`
}
