package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesRange(t *testing.T) {
	_, err := New(91, 10)
	require.Error(t, err)

	_, err = New(10, 181)
	require.Error(t, err)

	loc, err := New(41.0, 28.9)
	require.NoError(t, err)
	assert.Equal(t, 41.0, loc.Lat)
	assert.Equal(t, 28.9, loc.Lng)
}

func TestDistanceToZeroForSamePoint(t *testing.T) {
	a := Location{Lat: 41.00948, Lng: 28.9772}
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestDistanceToKnownRoute(t *testing.T) {
	// Two points ~1.2km apart on the Bosphorus shore (rough sanity check).
	a := Location{Lat: 41.00948, Lng: 28.9772}
	b := Location{Lat: 41.01868, Lng: 28.9692}
	d := a.DistanceTo(b)
	assert.Greater(t, d, 500.0)
	assert.Less(t, d, 2000.0)
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Location{Lat: 41.00948, Lng: 28.9772}
	b := Location{Lat: 41.05, Lng: 28.93}
	assert.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-9)
}

func TestPointToSegmentDistanceOnSegment(t *testing.T) {
	a := Location{Lat: 41.0, Lng: 29.0}
	b := Location{Lat: 41.01, Lng: 29.0}
	mid := Location{Lat: 41.005, Lng: 29.0}
	assert.Less(t, PointToSegmentDistanceM(mid, a, b), 1.0)
}

func TestPathApproachesLocationEmptyIsFalse(t *testing.T) {
	assert.False(t, PathApproachesLocation(nil, Location{Lat: 41, Lng: 29}, 10))
	assert.False(t, PathApproachesLocation([]Location{}, Location{Lat: 41, Lng: 29}, 10))
}

func TestPathApproachesLocationFindsNearbySegment(t *testing.T) {
	polyline := []Location{
		{Lat: 41.0, Lng: 29.0},
		{Lat: 41.02, Lng: 29.0},
	}
	near := Location{Lat: 41.01, Lng: 29.00001}
	assert.True(t, PathApproachesLocation(polyline, near, 50))

	far := Location{Lat: 42.5, Lng: 30.5}
	assert.False(t, PathApproachesLocation(polyline, far, 50))
}

func TestCumulativeDistanceCutoffStopsAtExceedingVertex(t *testing.T) {
	polyline := []Location{
		{Lat: 41.0, Lng: 29.0},
		{Lat: 41.01, Lng: 29.0},  // ~1.1km further
		{Lat: 41.05, Lng: 29.0},  // another ~4.4km further
		{Lat: 41.10, Lng: 29.0},
	}
	cutoff := CumulativeDistanceCutoff(polyline, 4000)
	// cumulative distance first exceeds 4000 at the 3rd vertex, so the
	// cutoff is the vertex before it
	assert.Equal(t, polyline[1], cutoff)
}

func TestCumulativeDistanceCutoffReturnsLastWhenNeverExceeds(t *testing.T) {
	polyline := []Location{
		{Lat: 41.0, Lng: 29.0},
		{Lat: 41.001, Lng: 29.0},
	}
	cutoff := CumulativeDistanceCutoff(polyline, 100000)
	assert.Equal(t, polyline[len(polyline)-1], cutoff)
}

func TestPointAlongLineClampsToEndpoints(t *testing.T) {
	a := Location{Lat: 41.0, Lng: 29.0}
	b := Location{Lat: 41.1, Lng: 29.1}
	assert.Equal(t, a, PointAlongLine(a, b, 0))
	assert.Equal(t, b, PointAlongLine(a, b, a.DistanceTo(b)+1000))
}

func TestPointAlongLineIsOnSegment(t *testing.T) {
	a := Location{Lat: 41.0, Lng: 29.0}
	b := Location{Lat: 41.1, Lng: 29.1}
	total := a.DistanceTo(b)
	mid := PointAlongLine(a, b, total/2)
	// The midpoint should be close to both endpoints' combined path,
	// and should not be a or b.
	assert.NotEqual(t, a, mid)
	assert.NotEqual(t, b, mid)
	assert.InDelta(t, total/2, a.DistanceTo(mid), total*0.05)
}

func TestLngLatRoundTrip(t *testing.T) {
	a := Location{Lat: 41.0, Lng: 29.0}
	assert.Equal(t, a, FromLngLat(a.ToLngLat()))
}
