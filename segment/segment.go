package segment

import (
	"time"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
)

// Segment is an ordered, non-empty run of updates forming one leg
type Segment []*tracking.Update

func (s Segment) First() *tracking.Update { return s[0] }

func (s Segment) Last() *tracking.Update { return s[len(s)-1] }

// Status is the status shared by the leg when split by status, otherwise the status of its first update
func (s Segment) Status() tracking.Status { return s[0].Status }

// Points returns the locations of the leg in order
func (s Segment) Points() []geo.GeoPoint {
	pts := make([]geo.GeoPoint, len(s))
	for i, u := range s {
		pts[i] = u.Location
	}
	return pts
}

// Duration is the time between the first and last update
func (s Segment) Duration() time.Duration {
	return absDuration(s.Last().Timestamp.Sub(s.First().Timestamp))
}

// Length is the travelled distance along the leg, in meters
func (s Segment) Length() float64 {
	return geo.PathLength(s.Points())
}

// Flatten returns the real updates of all segments in order, dropping synthetic boundary copies
func Flatten(segments []Segment) []*tracking.Update {
	var out []*tracking.Update
	for _, s := range segments {
		for _, u := range s {
			if !u.Synthetic {
				out = append(out, u)
			}
		}
	}
	return out
}
