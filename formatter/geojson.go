package formatter

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
	"github.com/theoremus-urban-solutions/emstrack-routes/route"
	"github.com/theoremus-urban-solutions/emstrack-routes/utils"
)

// BuildGeoJSON serializes rt as a FeatureCollection. A nil route gives an empty collection.
func (b *Builder) BuildGeoJSON(rt *route.Route) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	if rt != nil {
		for _, line := range rt.Lines {
			fc.Append(segmentFeature(rt, line))
		}
		for _, m := range rt.Markers {
			fc.Append(markerFeature(m))
		}
	}
	out, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}
	return out, nil
}

func segmentFeature(rt *route.Route, line route.Polyline) *geojson.Feature {
	var g orb.Geometry
	if len(line.Points) == 1 {
		g = toPoint(line.Points[0])
	} else {
		ls := make(orb.LineString, len(line.Points))
		for i, p := range line.Points {
			ls[i] = toPoint(p)
		}
		g = ls
	}

	seg := rt.Segments[line.Segment]
	f := geojson.NewFeature(g)
	f.Properties["kind"] = "segment"
	f.Properties["index"] = line.Segment
	f.Properties["layer"] = route.LayerName(line.Segment)
	f.Properties["status"] = string(line.Status)
	f.Properties["label"] = line.Label
	f.Properties["start"] = utils.Iso8601(seg.First().Timestamp)
	f.Properties["end"] = utils.Iso8601(seg.Last().Timestamp)
	f.Properties["duration_s"] = seg.Duration().Seconds()
	f.Properties["length_m"] = seg.Length()
	return f
}

func markerFeature(m route.Marker) *geojson.Feature {
	f := geojson.NewFeature(toPoint(m.Point()))
	f.Properties["kind"] = string(m.Kind)
	f.Properties["index"] = m.Segment
	f.Properties["status"] = string(m.Update.Status)
	f.Properties["label"] = m.Label
	f.Properties["timestamp"] = utils.Iso8601(m.Update.Timestamp)
	return f
}

func toPoint(p geo.GeoPoint) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
