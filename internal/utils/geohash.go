package utils

import (
	"strings"

	"github.com/mmcloughlin/geohash"
)

// PickupGeohashPrecision gives cells of roughly 1.2km x 0.6km, enough to group requests by neighbourhood
const PickupGeohashPrecision = 6

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ValidCoordinates reports whether lat/lng are within the WGS84 range
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// EncodePoint converts a point to a geohash string of the given precision
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// PickupGeohash returns the geohash for optional pickup coordinates, or "" when either is missing
func PickupGeohash(lat, lng *float64) string {
	if lat == nil || lng == nil || !ValidCoordinates(*lat, *lng) {
		return ""
	}
	return EncodePoint(GeoPoint{Latitude: *lat, Longitude: *lng}, PickupGeohashPrecision)
}

// GeohashArea returns the prefix itself plus its neighbours, lowercased.
// Used to widen an area filter so requests just across a cell border still show up.
func GeohashArea(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil
	}
	return append([]string{prefix}, geohash.Neighbors(prefix)...)
}

// GeohashPrefixes returns the cells an area filter matches: the prefix alone,
// or the prefix and its neighbours when near is set
func GeohashPrefixes(prefix string, near bool) []string {
	if near {
		return GeohashArea(prefix)
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil
	}
	return []string{prefix}
}
