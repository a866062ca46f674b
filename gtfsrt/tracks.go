package gtfsrt

import (
	"fmt"
	"sort"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
)

// Tracks stores observed vehicle positions keyed by vehicle
type Tracks struct {
	byVehicle       map[string][]*tracking.Update
	seen            map[string]map[int64]struct{} // vehicle -> unix seconds already recorded
	headerTimestamp int64
	dropped         int
}

// NewTracks creates an empty track store
func NewTracks() *Tracks {
	return &Tracks{
		byVehicle: map[string][]*tracking.Update{},
		seen:      map[string]map[int64]struct{}{},
	}
}

// Decode parses one or more raw VehiclePositions feeds into a track store
func Decode(feeds ...[]byte) (*Tracks, error) {
	t := NewTracks()
	for i, b := range feeds {
		if err := t.Add(b); err != nil {
			return nil, fmt.Errorf("feed %d: %w", i, err)
		}
	}
	return t, nil
}

// Add parses a raw protobuf FeedMessage and records its vehicle positions.
// Empty input is ignored.
func (t *Tracks) Add(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return fmt.Errorf("unmarshal feed message: %w", err)
	}
	t.AddFeedMessage(&fm)
	return nil
}

// AddFeedMessage records the vehicle positions of an already decoded feed
func (t *Tracks) AddFeedMessage(fm *gtfsrtpb.FeedMessage) {
	var headerTS int64
	if fm.Header != nil && fm.Header.Timestamp != nil {
		headerTS = int64(*fm.Header.Timestamp)
		if headerTS > t.headerTimestamp {
			t.headerTimestamp = headerTS
		}
	}
	for _, e := range fm.Entity {
		vp := e.GetVehicle()
		if vp == nil {
			continue
		}
		id := vehicleKey(e, vp)
		if id == "" || vp.Position == nil || vp.Position.Latitude == nil || vp.Position.Longitude == nil {
			t.dropped++
			continue
		}
		ts := headerTS
		if vp.Timestamp != nil {
			ts = int64(*vp.Timestamp)
		}
		if ts == 0 {
			t.dropped++
			continue
		}
		loc := geo.GeoPoint{
			Latitude:  float64(*vp.Position.Latitude),
			Longitude: float64(*vp.Position.Longitude),
		}
		if loc.Validate() != nil {
			t.dropped++
			continue
		}
		if t.seen[id] == nil {
			t.seen[id] = map[int64]struct{}{}
		}
		// a vehicle that did not report again keeps its old timestamp in later snapshots
		if _, dup := t.seen[id][ts]; dup {
			continue
		}
		t.seen[id][ts] = struct{}{}

		t.byVehicle[id] = append(t.byVehicle[id], &tracking.Update{
			Location:    loc,
			Timestamp:   time.Unix(ts, 0).UTC(),
			Status:      tracking.Status(vp.GetCurrentStatus().String()),
			Orientation: float64(vp.GetPosition().GetBearing()),
			Vehicle:     id,
		})
	}
}

// Vehicles returns the ids of all vehicles with at least one position, sorted
func (t *Tracks) Vehicles() []string {
	ids := make([]string, 0, len(t.byVehicle))
	for id := range t.byVehicle {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Updates returns the positions of a vehicle ordered by timestamp
func (t *Tracks) Updates(vehicleID string) []*tracking.Update {
	src := t.byVehicle[vehicleID]
	out := make([]*tracking.Update, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// GetTimestampForFeedMessage returns the newest header timestamp seen, in unix seconds
func (t *Tracks) GetTimestampForFeedMessage() int64 { return t.headerTimestamp }

// Dropped counts vehicle entities skipped for missing id, position or time, or invalid coordinates
func (t *Tracks) Dropped() int { return t.dropped }

func vehicleKey(e *gtfsrtpb.FeedEntity, vp *gtfsrtpb.VehiclePosition) string {
	if v := vp.GetVehicle(); v != nil {
		if v.GetId() != "" {
			return v.GetId()
		}
		if v.GetLabel() != "" {
			return v.GetLabel()
		}
	}
	if tripID := vp.GetTrip().GetTripId(); tripID != "" {
		return tripID
	}
	return e.GetId()
}
