// Package geo provides the geographic primitives used to segment vehicle tracks.
//
// It contains:
//   - GeoPoint, an immutable latitude/longitude pair in degrees
//   - Haversine great-circle distance on a spherical Earth
//   - Path length over an ordered list of points
//   - Coordinate range validation for decoders
package geo
