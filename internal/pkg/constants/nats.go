package constants

// NATS subjects consumed by the dispatcher console
const (
	SubjectSessionStatus = "tracker.session.status"
	SubjectTripArrived   = "tracker.trip.arrived"
)
