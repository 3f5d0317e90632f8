package kernel

import (
	"fmt"
	"math"

	"fooddrone/internal/pkg/errs"
)

// EarthRadiusKm is Earth's radius in kilometers for the haversine formula.
const EarthRadiusKm = 6371.0

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// GeoPoint is an immutable value object holding a GPS coordinate pair.
// GeoPoint provides the great-circle math the motion simulator is built on:
// haversine distance, linear interpolation toward a destination, and a
// capped step that never overshoots the target.
//
// The zero value is (0, 0), a valid point in the Gulf of Guinea; use
// NewGeoPoint to get range validation for external input.
type GeoPoint struct {
	lat float64
	lng float64
}

// NewGeoPoint creates a GeoPoint with range-validated coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < minLatitude || lat > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lat", lat, minLatitude, maxLatitude)
	}
	if lng < minLongitude || lng > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lng", lng, minLongitude, maxLongitude)
	}

	return GeoPoint{lat: lat, lng: lng}, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// DistanceTo returns the great-circle distance to another point in
// kilometers, computed with the haversine formula.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1Rad := toRadians(p.lat)
	lat2Rad := toRadians(other.lat)
	deltaLat := toRadians(other.lat - p.lat)
	deltaLng := toRadians(other.lng - p.lng)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Interpolate returns the point at the given fraction of the straight line
// toward destination: ratio 0 is the receiver, ratio 1 is the destination.
func (p GeoPoint) Interpolate(destination GeoPoint, ratio float64) GeoPoint {
	return GeoPoint{
		lat: p.lat + (destination.lat-p.lat)*ratio,
		lng: p.lng + (destination.lng-p.lng)*ratio,
	}
}

// MoveTowards advances at most maxDistanceKm along the straight line toward
// the destination. If the remaining distance is within the step, the
// destination itself is returned so a moving entity never overshoots.
func (p GeoPoint) MoveTowards(destination GeoPoint, maxDistanceKm float64) GeoPoint {
	totalDistance := p.DistanceTo(destination)
	if totalDistance <= maxDistanceKm {
		return destination
	}

	return p.Interpolate(destination, maxDistanceKm/totalDistance)
}

// IsEqual compares two points for exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p == other
}

// String returns the point formatted as "(lat, lng)" with six decimals.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.lat, p.lng)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
