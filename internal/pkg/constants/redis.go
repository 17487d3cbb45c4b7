package constants

// Redis key formats
const (
	KeyTripLastPosition = "tracker:trip:%s:last"    // Format: tracker:trip:{trip_id}:last
	KeyTripHistory      = "tracker:trip:%s:history" // Format: tracker:trip:{trip_id}:history
	KeyTripSession      = "tracker:trip:%s:session" // Format: tracker:trip:{trip_id}:session
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldSpeed     = "speed"
	FieldAccuracy  = "acc"
	FieldGeohash   = "geohash"
)
