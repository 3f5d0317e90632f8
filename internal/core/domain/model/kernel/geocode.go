package kernel

import "hash/fnv"

// Synthetic geocoding origin (District 1, Ho Chi Minh City). Addresses
// resolve to points within roughly ±5 km of this origin.
const (
	geocodeBaseLat = 10.7769
	geocodeBaseLng = 106.7009

	// ±0.05 degrees of offset on each axis.
	geocodeSpread = 0.1
)

// GeocodeAddress maps a free-form address to a synthetic GPS coordinate.
// The mapping is a pure function of the address text: the same address
// always resolves to the same point, which keeps delivery simulations
// reproducible. Real geocoding is out of scope.
func GeocodeAddress(address string) GeoPoint {
	h := fnv.New64a()
	_, _ = h.Write([]byte(address))
	sum := h.Sum64()

	// Two independent 32-bit halves drive the two axis offsets.
	latFrac := float64(uint32(sum)) / float64(1<<32)
	lngFrac := float64(uint32(sum>>32)) / float64(1<<32)

	return GeoPoint{
		lat: geocodeBaseLat + (latFrac-0.5)*geocodeSpread,
		lng: geocodeBaseLng + (lngFrac-0.5)*geocodeSpread,
	}
}
