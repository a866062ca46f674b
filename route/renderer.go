package route

import (
	"fmt"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
)

// Renderer is the mapping library seen through the operations a route needs
type Renderer interface {
	PlaceMarker(m Marker) error
	DrawPolyline(p Polyline) error
	AddControl(entries []FilterEntry) error
	Center(p geo.GeoPoint) error
}

// Draw sends a planned route to r. Per leg, the start or status marker comes
// first, then the polyline, then the end marker for the last leg. The filter
// control is added and the map centred last. A nil route draws nothing.
func Draw(r Renderer, rt *Route) error {
	if rt == nil {
		return nil
	}
	for i, line := range rt.Lines {
		var end *Marker
		for _, m := range rt.MarkersFor(i) {
			if m.Kind == MarkerEnd {
				end = &m
				continue
			}
			if err := r.PlaceMarker(m); err != nil {
				return fmt.Errorf("segment %d: place %s marker: %w", i, m.Kind, err)
			}
		}
		if err := r.DrawPolyline(line); err != nil {
			return fmt.Errorf("segment %d: draw polyline: %w", i, err)
		}
		if end != nil {
			if err := r.PlaceMarker(*end); err != nil {
				return fmt.Errorf("segment %d: place end marker: %w", i, err)
			}
		}
	}
	if err := r.AddControl(rt.Filter); err != nil {
		return fmt.Errorf("add filter control: %w", err)
	}
	if err := r.Center(rt.Center); err != nil {
		return fmt.Errorf("center map: %w", err)
	}
	return nil
}
