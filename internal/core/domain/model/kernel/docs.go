// Package kernel contains shared domain primitives: the UUID identity value
// object, the GeoPoint coordinate value object with great-circle math, and
// the deterministic pseudo-geocoder that maps delivery addresses to
// reproducible synthetic coordinates.
package kernel
