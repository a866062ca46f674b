package segment

import (
	"time"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
)

// SeparationThreshold bounds the distance between consecutive updates, in meters
type SeparationThreshold struct {
	Min float64
	Max float64
}

// TimeThreshold bounds the interval between consecutive updates
type TimeThreshold struct {
	Min time.Duration
	Max time.Duration
}

// DistanceFunc measures the distance in meters between two points
type DistanceFunc func(a, b geo.GeoPoint) float64

// Default thresholds: 100 m / 10 km and 2 minutes / 1 hour
var (
	DefaultSeparation = SeparationThreshold{Min: 100, Max: 10000}
	DefaultTimeGap    = TimeThreshold{Min: 2 * time.Minute, Max: time.Hour}
)

// Options controls how Split breaks a stream. Zero thresholds are honoured
// as zero; start from DefaultOptions to get the documented defaults.
type Options struct {
	// SplitByStatus also breaks a leg whenever the status changes
	SplitByStatus bool

	Separation SeparationThreshold
	TimeGap    TimeThreshold

	// Distance defaults to geo.GreatCircleDistance when nil
	Distance DistanceFunc
}

// DefaultOptions returns the default segmentation policy
func DefaultOptions() Options {
	return Options{
		SplitByStatus: false,
		Separation:    DefaultSeparation,
		TimeGap:       DefaultTimeGap,
		Distance:      geo.GreatCircleDistance,
	}
}

func (o Options) distance() DistanceFunc {
	if o.Distance == nil {
		return geo.GreatCircleDistance
	}
	return o.Distance
}

// breaks reports whether the distance/interval pair ends the current leg
func (o Options) breaks(distance float64, interval time.Duration) bool {
	return distance > o.Separation.Max ||
		interval > o.TimeGap.Max ||
		(interval > o.TimeGap.Min && distance > o.Separation.Min)
}
