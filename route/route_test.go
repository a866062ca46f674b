package route

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
	"github.com/theoremus-urban-solutions/emstrack-routes/segment"
	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
)

type recorder struct {
	calls   []string
	markers []Marker
	lines   []Polyline
	filter  []FilterEntry
	center  geo.GeoPoint
	failOn  string
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if call == r.failOn {
		return errors.New("boom")
	}
	return nil
}

func (r *recorder) PlaceMarker(m Marker) error {
	r.markers = append(r.markers, m)
	return r.record("marker:" + string(m.Kind))
}

func (r *recorder) DrawPolyline(p Polyline) error {
	r.lines = append(r.lines, p)
	return r.record("line")
}

func (r *recorder) AddControl(entries []FilterEntry) error {
	r.filter = entries
	return r.record("control")
}

func (r *recorder) Center(p geo.GeoPoint) error {
	r.center = p
	return r.record("center")
}

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", "ambulance_updates.json"))
	require.NoError(t, err)
	return data
}

func TestBuildByStatus(t *testing.T) {
	opts := segment.DefaultOptions()
	opts.SplitByStatus = true

	rt, err := Build(loadFixture(t), DefaultLabels(), opts)
	require.NoError(t, err)
	require.NotNil(t, rt)

	// AV -> PB status change, PB -> AP status change (also a 1.5h gap)
	require.Len(t, rt.Segments, 3)
	require.Len(t, rt.Lines, 3)

	kinds := []MarkerKind{}
	labels := []string{}
	for _, m := range rt.Markers {
		kinds = append(kinds, m.Kind)
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []MarkerKind{MarkerStart, MarkerStatus, MarkerStatus, MarkerEnd}, kinds)
	assert.Equal(t, []string{"Available", "Patient bound", "At patient", "At patient"}, labels)

	assert.Equal(t, geo.GeoPoint{Latitude: 32.51543, Longitude: -117.03821}, rt.Center)
	require.Len(t, rt.Filter, 3)
	assert.Equal(t, "layer_2", rt.Filter[2].Layer)
	assert.True(t, rt.Filter[2].Start.Equal(time.Date(2019, 2, 3, 11, 30, 0, 0, time.UTC)))
	assert.Equal(t, "Patient bound", rt.Lines[1].Label)
}

func TestBuildWithoutStatusSplit(t *testing.T) {
	rt, err := Build(loadFixture(t), DefaultLabels(), segment.DefaultOptions())
	require.NoError(t, err)

	// only the long silence breaks the track
	require.Len(t, rt.Segments, 2)
	require.Len(t, rt.Markers, 2)
	assert.Equal(t, MarkerStart, rt.Markers[0].Kind)
	assert.Equal(t, MarkerEnd, rt.Markers[1].Kind)
	assert.Equal(t, 1, rt.Markers[1].Segment)
}

func TestBuildEmptyFeed(t *testing.T) {
	rt, err := Build([]byte(`{"results": []}`), DefaultLabels(), segment.DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, rt)
	assert.NoError(t, Draw(&recorder{}, rt))
}

func TestBuildPropagatesParseError(t *testing.T) {
	data := []byte(`[{"location": {"latitude": 1, "longitude": 1}, "timestamp": "not a time", "status": "AV"}]`)
	_, err := Build(data, DefaultLabels(), segment.DefaultOptions())
	var perr *tracking.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestPlanSingleUpdate(t *testing.T) {
	u := &tracking.Update{Location: geo.GeoPoint{Latitude: 1, Longitude: 2}, Status: "XX"}
	rt := Plan([]segment.Segment{{u}}, DefaultLabels(), false)
	require.NotNil(t, rt)
	require.Len(t, rt.Markers, 2)
	assert.Same(t, u, rt.Markers[0].Update)
	assert.Same(t, u, rt.Markers[1].Update)
	assert.Equal(t, "XX", rt.Markers[0].Label)
	assert.Nil(t, Plan(nil, DefaultLabels(), false))
}

func TestDrawOrder(t *testing.T) {
	opts := segment.DefaultOptions()
	opts.SplitByStatus = true
	rt, err := Build(loadFixture(t), DefaultLabels(), opts)
	require.NoError(t, err)

	r := &recorder{}
	require.NoError(t, Draw(r, rt))

	assert.Equal(t, []string{
		"marker:start", "line",
		"marker:status", "line",
		"marker:status", "line", "marker:end",
		"control", "center",
	}, r.calls)
	assert.Equal(t, rt.Center, r.center)
	assert.Len(t, r.filter, 3)
}

func TestDrawStopsOnError(t *testing.T) {
	rt, err := Build(loadFixture(t), DefaultLabels(), segment.DefaultOptions())
	require.NoError(t, err)

	r := &recorder{failOn: "line"}
	err = Draw(r, rt)
	require.Error(t, err)
	assert.Equal(t, []string{"marker:start", "line"}, r.calls)
}

func TestLabels(t *testing.T) {
	l := Labels{"PB": "Patient bound"}
	assert.Equal(t, "Patient bound", l.Label("PB"))
	assert.Equal(t, "ZZ", l.Label("ZZ"))
	assert.Equal(t, "ZZ", Labels(nil).Label("ZZ"))
}
