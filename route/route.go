package route

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
	"github.com/theoremus-urban-solutions/emstrack-routes/segment"
	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
)

// MarkerKind tells why a marker is placed
type MarkerKind string

const (
	MarkerStart  MarkerKind = "start"
	MarkerStatus MarkerKind = "status"
	MarkerEnd    MarkerKind = "end"
)

// Marker is a labelled point on the route
type Marker struct {
	Kind    MarkerKind
	Segment int
	Update  *tracking.Update
	Label   string
}

// Point returns the marker position
func (m Marker) Point() geo.GeoPoint { return m.Update.Location }

// Polyline is the drawn line of one leg
type Polyline struct {
	Segment int
	Status  tracking.Status
	Label   string
	Points  []geo.GeoPoint
}

// FilterEntry is one checkbox of the leg filter control
type FilterEntry struct {
	Layer string
	Start time.Time
}

// Route holds everything needed to draw a segmented track
type Route struct {
	Segments []segment.Segment
	Markers  []Marker
	Lines    []Polyline
	Filter   []FilterEntry
	Center   geo.GeoPoint
}

// Plan builds drawing instructions for segments. It returns nil when there
// is nothing to draw.
func Plan(segments []segment.Segment, labels Labels, byStatus bool) *Route {
	if len(segments) == 0 {
		return nil
	}
	rt := &Route{
		Segments: segments,
		Lines:    make([]Polyline, 0, len(segments)),
		Filter:   make([]FilterEntry, 0, len(segments)),
		Center:   segments[0].First().Location,
	}

	var previous segment.Segment
	for i, s := range segments {
		initial := s.First()
		if i == 0 {
			rt.Markers = append(rt.Markers, newMarker(MarkerStart, i, initial, labels))
		} else if byStatus && previous.Last().Status != initial.Status {
			rt.Markers = append(rt.Markers, newMarker(MarkerStatus, i, initial, labels))
		}

		rt.Lines = append(rt.Lines, Polyline{Segment: i, Status: s.Status(), Label: labels.Label(s.Status()), Points: s.Points()})
		rt.Filter = append(rt.Filter, FilterEntry{Layer: LayerName(i), Start: initial.Timestamp})

		if i == len(segments)-1 {
			rt.Markers = append(rt.Markers, newMarker(MarkerEnd, i, s.Last(), labels))
		}
		previous = s
	}
	return rt
}

// Build decodes a JSON update feed, segments it and plans the route.
// An empty feed yields a nil route and no error.
func Build(data []byte, labels Labels, opts segment.Options) (*Route, error) {
	updates, err := tracking.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return FromUpdates(updates, labels, opts), nil
}

// FromUpdates segments already decoded updates and plans the route
func FromUpdates(updates []*tracking.Update, labels Labels, opts segment.Options) *Route {
	if len(updates) == 0 {
		return nil
	}
	return Plan(segment.Split(updates, opts), labels, opts.SplitByStatus)
}

// LayerName is the map pane name of leg i
func LayerName(i int) string { return fmt.Sprintf("layer_%d", i) }

// MarkersFor returns the markers attached to leg i in drawing order
func (r *Route) MarkersFor(i int) []Marker {
	var out []Marker
	for _, m := range r.Markers {
		if m.Segment == i {
			out = append(out, m)
		}
	}
	return out
}

func newMarker(kind MarkerKind, seg int, u *tracking.Update, labels Labels) Marker {
	return Marker{Kind: kind, Segment: seg, Update: u, Label: labels.Label(u.Status)}
}
