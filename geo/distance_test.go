package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreatCircleDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     GeoPoint
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			a:        GeoPoint{Latitude: 32.7157, Longitude: -117.1611},
			b:        GeoPoint{Latitude: 32.7157, Longitude: -117.1611},
			expected: 0,
			delta:    0,
		},
		{
			name:     "one degree of longitude on the equator",
			a:        GeoPoint{Latitude: 0, Longitude: 0},
			b:        GeoPoint{Latitude: 0, Longitude: 1},
			expected: EarthRadius * math.Pi / 180,
			delta:    1e-6,
		},
		{
			name:     "one degree of latitude",
			a:        GeoPoint{Latitude: 10, Longitude: 20},
			b:        GeoPoint{Latitude: 11, Longitude: 20},
			expected: EarthRadius * math.Pi / 180,
			delta:    1e-6,
		},
		{
			name:     "pole to pole",
			a:        GeoPoint{Latitude: 90, Longitude: 0},
			b:        GeoPoint{Latitude: -90, Longitude: 0},
			expected: EarthRadius * math.Pi,
			delta:    1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GreatCircleDistance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestGreatCircleDistanceSymmetric(t *testing.T) {
	points := []GeoPoint{
		{Latitude: 32.7157, Longitude: -117.1611},
		{Latitude: 19.4326, Longitude: -99.1332},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 51.5074, Longitude: -0.1278},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, GreatCircleDistance(p, p), "distance to self for %v", p)
		for _, q := range points {
			assert.Equal(t, GreatCircleDistance(p, q), GreatCircleDistance(q, p), "symmetry for %v %v", p, q)
			assert.GreaterOrEqual(t, GreatCircleDistance(p, q), 0.0)
		}
	}
}

func TestGreatCircleDistanceRadiusMatchesOrb(t *testing.T) {
	a := GeoPoint{Latitude: 32.7157, Longitude: -117.1611}
	b := GeoPoint{Latitude: 32.8801, Longitude: -117.2340}

	want := orbgeo.DistanceHaversine(orb.Point{a.Longitude, a.Latitude}, orb.Point{b.Longitude, b.Latitude})
	got := GreatCircleDistanceRadius(a, b, orb.EarthRadius)
	assert.InDelta(t, want, got, want*1e-9)
}

func TestGreatCircleDistanceRadiusScales(t *testing.T) {
	a := GeoPoint{Latitude: 0, Longitude: 0}
	b := GeoPoint{Latitude: 0, Longitude: 90}
	assert.InDelta(t, math.Pi/2, GreatCircleDistanceRadius(a, b, 1), 1e-12)
}

func TestGreatCircleDistanceNaNPropagates(t *testing.T) {
	a := GeoPoint{Latitude: math.NaN(), Longitude: 0}
	b := GeoPoint{Latitude: 0, Longitude: 0}
	assert.True(t, math.IsNaN(GreatCircleDistance(a, b)))
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0.0, PathLength(nil))
	assert.Equal(t, 0.0, PathLength([]GeoPoint{{Latitude: 1, Longitude: 1}}))

	pts := []GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 1},
		{Latitude: 0, Longitude: 2},
	}
	assert.InDelta(t, 2*EarthRadius*math.Pi/180, PathLength(pts), 1e-6)
}

func TestGeoPointValidate(t *testing.T) {
	tests := []struct {
		name    string
		point   GeoPoint
		wantErr bool
	}{
		{name: "origin", point: GeoPoint{}, wantErr: false},
		{name: "bounds", point: GeoPoint{Latitude: -90, Longitude: 180}, wantErr: false},
		{name: "latitude too large", point: GeoPoint{Latitude: 90.5, Longitude: 0}, wantErr: true},
		{name: "longitude too small", point: GeoPoint{Latitude: 0, Longitude: -180.1}, wantErr: true},
		{name: "nan latitude", point: GeoPoint{Latitude: math.NaN(), Longitude: 0}, wantErr: true},
		{name: "infinite longitude", point: GeoPoint{Latitude: 0, Longitude: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.point.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCoordinate))
		})
	}
}
