package segment

import (
	"time"

	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
)

// Split partitions updates into legs in a single forward pass.
// The returned segments reference the caller's updates; only synthetic
// boundary copies are newly allocated.
func Split(updates []*tracking.Update, opts Options) []Segment {
	distance := opts.distance()

	segments := []Segment{}
	var current Segment
	var last *tracking.Update

	for _, u := range updates {
		if last != nil {
			d := distance(last.Location, u.Location)
			interval := absDuration(u.Timestamp.Sub(last.Timestamp))

			statusChanged := opts.SplitByStatus && last.Status != u.Status
			if statusChanged {
				// close the leg at the incoming position, still carrying the outgoing status
				current = append(current, boundaryCopy(u, last.Status))
			}

			if statusChanged || opts.breaks(d, interval) {
				segments = append(segments, current)
				current = nil
			}
		}

		current = append(current, u)
		last = u
	}

	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// SplitDefault splits updates using DefaultOptions
func SplitDefault(updates []*tracking.Update) []Segment {
	return Split(updates, DefaultOptions())
}

func boundaryCopy(u *tracking.Update, status tracking.Status) *tracking.Update {
	c := u.WithStatus(status)
	c.Synthetic = true
	return c
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
