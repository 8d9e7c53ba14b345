package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multimodal-router/internal/config"
	"multimodal-router/internal/domain"
	"multimodal-router/internal/geo"
	"multimodal-router/internal/oracle"
	"multimodal-router/internal/pathenum"
	"multimodal-router/internal/routegraph"
)

// stubOracle stands in for the external routing oracle exactly as
// spec.md §8's concrete scenarios prescribe: distance = haversine ·
// FACTOR, duration = distance / a fixed mode speed. mode speeds here
// are arbitrary test constants, not planner policy.
type stubOracle struct {
	fail map[string]bool // "fromUID|toUID" -> force ExternalServiceError
}

func (s *stubOracle) Snap(ctx context.Context, locs []geo.Location, profile oracle.Profile, radiusM float64) ([]geo.Location, error) {
	return locs, nil
}

func (s *stubOracle) Directions(ctx context.Context, from, to geo.Location, mot domain.TransportType) (oracle.Result, error) {
	d := from.DistanceTo(to) * config.Factor
	speed := 1.4
	switch mot {
	case domain.Car, domain.Bus:
		speed = 11.0
	case domain.Scooter:
		speed = 5.0
	}
	return oracle.Result{
		DistanceM: d,
		DurationS: d / speed,
		Polyline:  []geo.Location{from, to},
	}, nil
}

func TestEvaluateSurvivesDirectFootPath(t *testing.T) {
	start := domain.Point{Name: domain.StartName, Loc: geo.Location{Lat: 41.00948, Lng: 28.9772}}
	end := domain.Point{Name: domain.EndName, Loc: geo.Location{Lat: 41.01148, Lng: 28.9772}}

	g := routegraph.NewGraph()
	g.AddEdge(start, end, domain.Foot, config.WalkCost)

	ev := New(&stubOracle{}, g, domain.TrafficConditions{})
	rows, stops, err := ev.Evaluate(context.Background(), []pathenum.Path{{start.UID(), end.UID()}})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, stops)
	assert.Equal(t, "F", rows[0].Pattern)
	assert.Equal(t, 1, rows[0].WalkCount)
	assert.Equal(t, 1, rows[0].Edges)
	assert.Len(t, rows[0].ExpectedIntermediateTime, 2)
	assert.Equal(t, 0.0, rows[0].ExpectedIntermediateTime[0])
}

func TestEvaluateDropsPathExceedingWalkRange(t *testing.T) {
	start := domain.Point{Name: domain.StartName, Loc: geo.Location{Lat: 41.00, Lng: 29.00}}
	end := domain.Point{Name: domain.EndName, Loc: geo.Location{Lat: 41.02, Lng: 29.00}}

	g := routegraph.NewGraph()
	g.AddEdge(start, end, domain.Foot, config.WalkCost)

	ev := New(&stubOracle{}, g, domain.TrafficConditions{})
	rows, _, err := ev.Evaluate(context.Background(), []pathenum.Path{{start.UID(), end.UID()}})

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEvaluateSplitsLongScooterLeg(t *testing.T) {
	start := domain.Point{Name: domain.StartName, Loc: geo.Location{Lat: 41.000, Lng: 29.000}}
	end := domain.Point{Name: domain.EndName, Loc: geo.Location{Lat: 41.050, Lng: 29.000}}
	scooter := domain.Vehicle{ID: 1, Type: domain.Scooter, Loc: start.Loc}

	g := routegraph.NewGraph()
	g.AddEdge(start, scooter, domain.Foot, config.WalkCost)
	g.AddEdge(scooter, end, domain.Scooter, config.ScooterRentCost)

	ev := New(&forcedDistanceOracle{distance: 4500, duration: 900}, g, domain.TrafficConditions{})
	rows, stops, err := ev.Evaluate(context.Background(), []pathenum.Path{{start.UID(), scooter.UID(), end.UID()}})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, stops, 1)
	assert.Contains(t, rows[0].Path, stops[0].UID())
	assert.Equal(t, domain.ScooterStop, stops[0].Type)
}

// forcedDistanceOracle always reports a fixed distance/duration for
// SCOOTER legs (to force the split path) and falls back to the
// straight-line stub for everything else.
type forcedDistanceOracle struct {
	distance, duration float64
}

func (f *forcedDistanceOracle) Snap(ctx context.Context, locs []geo.Location, profile oracle.Profile, radiusM float64) ([]geo.Location, error) {
	return locs, nil
}

func (f *forcedDistanceOracle) Directions(ctx context.Context, from, to geo.Location, mot domain.TransportType) (oracle.Result, error) {
	if mot == domain.Scooter {
		mid := geo.PointAlongLine(from, to, f.distance/2)
		return oracle.Result{
			DistanceM: f.distance,
			DurationS: f.duration,
			Polyline:  []geo.Location{from, mid, to},
		}, nil
	}
	return (&stubOracle{}).Directions(ctx, from, to, mot)
}

func TestEvaluateDropsPathOnOracleFailure(t *testing.T) {
	start := domain.Point{Name: domain.StartName, Loc: geo.Location{Lat: 41.00, Lng: 29.00}}
	end := domain.Point{Name: domain.EndName, Loc: geo.Location{Lat: 41.001, Lng: 29.00}}

	g := routegraph.NewGraph()
	g.AddEdge(start, end, domain.Foot, config.WalkCost)

	failing := &failingOracle{}
	ev := New(failing, g, domain.TrafficConditions{})
	rows, _, err := ev.Evaluate(context.Background(), []pathenum.Path{{start.UID(), end.UID()}})

	require.NoError(t, err)
	assert.Empty(t, rows)
}

type failingOracle struct{}

func (f *failingOracle) Snap(ctx context.Context, locs []geo.Location, profile oracle.Profile, radiusM float64) ([]geo.Location, error) {
	return nil, errors.New("unreachable")
}

func (f *failingOracle) Directions(ctx context.Context, from, to geo.Location, mot domain.TransportType) (oracle.Result, error) {
	return oracle.Result{}, &domain.ExternalServiceError{Op: "directions", Reason: "unreachable"}
}
