package models

import (
	"time"
)

// TripStatus represents the current status of a delivery trip
type TripStatus string

const (
	TripStatusDispatched TripStatus = "DISPATCHED"
	TripStatusInTransit  TripStatus = "IN_TRANSIT"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// StopStatus represents the lifecycle status of a single delivery stop
type StopStatus string

const (
	StopStatusDispatched StopStatus = "DISPATCHED"
	StopStatusInTransit  StopStatus = "IN_TRANSIT"
	StopStatusAtStore    StopStatus = "AT_STORE"
	StopStatusDelivered  StopStatus = "DELIVERED"
)

// Stop is one delivery destination within a trip. The backend owns stop
// state; the agent only holds read-only snapshots.
type Stop struct {
	OrderID       string     `json:"order_id"`
	SequenceNo    int        `json:"sequence_no"`
	Status        StopStatus `json:"status"`
	StoreName     string     `json:"store_name"`
	StoreLocation *GeoPoint  `json:"store_location,omitempty"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
}

// Trip represents a delivery trip: an ordered run of stops assigned to
// one dispatcher and mover.
type Trip struct {
	ID            string     `json:"id"`
	Status        TripStatus `json:"status"`
	WarehouseName string     `json:"warehouse_name"`
	Stops         []Stop     `json:"stops"`
}

// TrackingSnapshot is the backend's tracking view of a trip, used as
// input for progress derivation.
type TrackingSnapshot struct {
	TripID         string `json:"trip_id"`
	Stops          []Stop `json:"stops"`
	TotalStops     int    `json:"total_stops"`
	CompletedStops int    `json:"completed_stops"`
}

// TripProgress is the derived progress view over a trip's stops
type TripProgress struct {
	TripID          string `json:"trip_id"`
	CurrentStop     *Stop  `json:"current_stop,omitempty"`
	UpcomingStops   []Stop `json:"upcoming_stops"`
	CompletedStops  []Stop `json:"completed_stops"`
	TotalStops      int    `json:"total_stops"`
	PercentComplete int    `json:"percent_complete"`
}
