package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// GeohashPrecision is the cell size used for bucketing positions.
// Precision 7 is roughly a 150m x 150m cell, fine enough to group
// samples taken around one storefront.
const GeohashPrecision = 7

// HaversineDistanceMeters calculates the great-circle distance between
// two points in meters using the Haversine formula
func HaversineDistanceMeters(p1, p2 models.GeoPoint) float64 {
	// Earth's radius in meters
	const earthRadius = 6371000.0

	// Convert latitude and longitude from degrees to radians
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// EncodeGeohash converts a point to a geohash cell at the default precision
func EncodeGeohash(point models.GeoPoint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a point (cell center)
func DecodeGeohash(hash string) models.GeoPoint {
	latitude, longitude := geohash.Decode(hash)
	return models.GeoPoint{Latitude: latitude, Longitude: longitude}
}
