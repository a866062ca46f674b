package geo

import "math"

// EarthRadius is the mean Earth radius in meters
const EarthRadius = 6371e3

// GreatCircleDistance returns the haversine distance in meters between a and b on a sphere of EarthRadius
func GreatCircleDistance(a, b GeoPoint) float64 {
	return GreatCircleDistanceRadius(a, b, EarthRadius)
}

// GreatCircleDistanceRadius returns the haversine distance between a and b on a sphere of the given radius.
// The result has the unit of radius. NaN inputs propagate.
func GreatCircleDistanceRadius(a, b GeoPoint, radius float64) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dPhi := lat2 - lat1
	dLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return radius * c
}

// PathLength sums the great-circle distances between consecutive points, in meters
func PathLength(points []GeoPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += GreatCircleDistance(points[i-1], points[i])
	}
	return total
}
