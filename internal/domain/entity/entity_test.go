package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		valid bool
	}{
		{"campus", Coordinate{Lat: 4.589, Lng: 101.125}, true},
		{"north pole", Coordinate{Lat: 90, Lng: 0}, true},
		{"beyond north pole", Coordinate{Lat: 95, Lng: 0}, false},
		{"beyond longitude", Coordinate{Lat: 0, Lng: -195}, false},
		{"nan", Coordinate{Lat: math.NaN(), Lng: 0}, false},
		{"inf", Coordinate{Lat: 0, Lng: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.coord.IsValid())
		})
	}
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	coord := Coordinate{Lat: 4.589, Lng: 101.125}
	point := coord.Point()

	assert.Equal(t, 101.125, point[0], "orb points are longitude first")
	assert.Equal(t, 4.589, point[1])
	assert.Equal(t, coord, CoordinateFromPoint(point))
}

func TestCoordinate_DistanceTo(t *testing.T) {
	a := Coordinate{Lat: 4.589, Lng: 101.125}
	b := Coordinate{Lat: 4.590, Lng: 101.125}

	// 0.001 degrees of latitude is roughly 111 meters
	assert.InDelta(t, 111.3, a.DistanceTo(b), 1.0)
	assert.Zero(t, a.DistanceTo(a))
}

func TestParseQueryCoordinate(t *testing.T) {
	tests := []struct {
		name string
		lat  string
		lng  string
		ok   bool
	}{
		{"valid", "4.589", "101.125", true},
		{"padded", " 4.589 ", "101.125", true},
		{"missing lat", "", "101.125", false},
		{"missing lng", "4.589", "", false},
		{"non numeric", "abc", "101.125", false},
		{"trailing garbage", "4.589abc", "101.125", false},
		{"nan", "NaN", "101.125", false},
		{"infinite", "4.589", "Inf", false},
		{"out of range", "91", "101.125", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, ok := ParseQueryCoordinate(tt.lat, tt.lng)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, coord.IsValid())
			}
		})
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		input    string
		expected Profile
	}{
		{"driving", ProfileDriving},
		{"driving-car", ProfileDriving},
		{"Walking", ProfileWalking},
		{"foot-walking", ProfileWalking},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			profile, err := ParseProfile(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, profile)
		})
	}

	_, err := ParseProfile("cycling")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestProfile_ServiceNamesAndDefaults(t *testing.T) {
	assert.Equal(t, "driving-car", ProfileDriving.PrimaryName())
	assert.Equal(t, "foot-walking", ProfileWalking.PrimaryName())
	assert.Equal(t, "driving", ProfileDriving.FallbackName())
	assert.Equal(t, "walking", ProfileWalking.FallbackName())
	assert.Equal(t, BufferDistance(40), ProfileDriving.DefaultBuffer())
	assert.Equal(t, BufferDistance(20), ProfileWalking.DefaultBuffer())
}

func TestNewBufferDistance(t *testing.T) {
	for _, meters := range []int{10, 20, 40, 130} {
		b, err := NewBufferDistance(meters)
		require.NoError(t, err)
		assert.Equal(t, BufferDistance(meters), b)
	}

	for _, meters := range []int{0, 5, 15, 140, -10} {
		_, err := NewBufferDistance(meters)
		assert.ErrorIs(t, err, ErrInvalidBufferDistance, "meters=%d", meters)
	}
}

func TestRouteResult_IsValid(t *testing.T) {
	line := []Coordinate{{Lat: 4.589, Lng: 101.125}, {Lat: 4.590, Lng: 101.126}}

	assert.True(t, (&RouteResult{Geometry: line}).IsValid())
	assert.False(t, (&RouteResult{Geometry: line[:1]}).IsValid())
	assert.False(t, (&RouteResult{Geometry: line, DistanceMeters: -1}).IsValid())
	assert.False(t, (&RouteResult{Geometry: line, DurationSeconds: math.NaN()}).IsValid())

	// lat and lng swapped by the backend
	swapped := []Coordinate{{Lat: 101.1261, Lng: 4.5901}, {Lat: 101.1302, Lng: 4.5935}}
	assert.False(t, (&RouteResult{Geometry: swapped}).IsValid())
	assert.False(t, (&RouteResult{Geometry: append([]Coordinate{line[0]}, Coordinate{Lat: math.NaN()})}).IsValid())

	var nilRoute *RouteResult
	assert.False(t, nilRoute.IsValid())
}

func TestRouteResult_DistanceToNearestVertex(t *testing.T) {
	route := &RouteResult{Geometry: []Coordinate{
		{Lat: 4.589, Lng: 101.125},
		{Lat: 4.591, Lng: 101.125},
	}}

	// Midpoint of the segment is ~111 m from both vertices even though it lies on the line.
	mid := Coordinate{Lat: 4.590, Lng: 101.125}
	assert.InDelta(t, 111.3, route.DistanceToNearestVertex(mid), 1.0)
	assert.Zero(t, route.DistanceToNearestVertex(route.Geometry[1]))
}

func TestRouteResult_SummaryText(t *testing.T) {
	walk := &RouteResult{DistanceMeters: 1249, DurationSeconds: 720, Profile: ProfileWalking}
	assert.Equal(t, "1.2 km", walk.DistanceText())
	assert.Equal(t, "12 min walk", walk.DurationText())

	drive := &RouteResult{DurationSeconds: 3900, Profile: ProfileDriving}
	assert.Equal(t, "1h 5m drive", drive.DurationText())
}

func TestPositionSample_Age(t *testing.T) {
	now := time.Now()
	sample := PositionSample{CapturedAt: now.Add(-3 * time.Second)}

	assert.Equal(t, 3*time.Second, sample.Age(now))
	assert.Zero(t, PositionSample{}.Age(now))
}
