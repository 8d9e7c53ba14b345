// Package oracle is the adapter to the external directions/snap
// service spec.md treats as an opaque collaborator: given two
// locations and a mode of transport it returns a real-route distance,
// duration, and polyline, or performs road/network snapping. Results
// are memoized through an oraclecache.Cache.
package oracle

import (
	"context"
	"fmt"

	"multimodal-router/internal/config"
	"multimodal-router/internal/domain"
	"multimodal-router/internal/geo"
	"multimodal-router/internal/oraclecache"
)

// Profile selects the oracle's routing engine for a mode of transport.
type Profile string

const (
	ProfileDrivingCar      Profile = "driving-car"
	ProfileFootWalking     Profile = "foot-walking"
	ProfileCyclingElectric Profile = "cycling-electric"
)

// ProfileFor maps a mode of transport to the oracle profile used to
// query it. SEA_VESSEL has no profile: Directions bypasses the oracle
// entirely for that mode.
func ProfileFor(mot domain.TransportType) Profile {
	switch mot {
	case domain.Car, domain.Bus:
		return ProfileDrivingCar
	case domain.Foot:
		return ProfileFootWalking
	case domain.Scooter:
		return ProfileCyclingElectric
	default:
		return ProfileDrivingCar
	}
}

// Result is the outcome of a directions query: the real-route
// distance and duration, plus the polyline geometry the evaluator
// walks for traffic-proximity and scooter-split checks.
type Result struct {
	DistanceM float64
	DurationS float64
	Polyline  []geo.Location
}

// Client is the oracle interface the graph and path evaluator depend
// on. Memoization is layered on by WithCache: a client it wraps does
// not re-hit the network for a repeated (mot, from, to) directions
// query, while a bare HTTPClient makes one round trip per call.
type Client interface {
	// Snap maps each input location to the nearest point on the
	// oracle's routing network. Profile defaults to ProfileDrivingCar
	// when empty.
	Snap(ctx context.Context, locations []geo.Location, profile Profile, radiusM float64) ([]geo.Location, error)

	// Directions returns the real-route distance, duration, and
	// polyline between from and to for the given mode of transport.
	Directions(ctx context.Context, from, to geo.Location, mot domain.TransportType) (Result, error)
}

// seaVesselDirections bypasses the oracle for SEA_VESSEL: the engine
// has no port-to-port shipping-lane network to query, so it estimates
// a straight-line crossing at a fixed average speed.
func seaVesselDirections(from, to geo.Location) Result {
	d := from.DistanceTo(to)
	return Result{
		DistanceM: d,
		DurationS: d / config.AvgSeaVesselVelocityMPS,
		Polyline:  []geo.Location{from, to},
	}
}

// cachedClient wraps any Client with an oraclecache.Cache, so
// directions lookups become idempotent and referentially transparent
// for fixed inputs as spec.md §4.3 requires. SEA_VESSEL directions are
// cheap to recompute and are not cached.
type cachedClient struct {
	inner Client
	cache oraclecache.Cache
}

// WithCache wraps client so that Directions results are memoized in
// cache, keyed by (mot, from, to) rounded to a fixed precision.
func WithCache(client Client, cache oraclecache.Cache) Client {
	return &cachedClient{inner: client, cache: cache}
}

func (c *cachedClient) Snap(ctx context.Context, locations []geo.Location, profile Profile, radiusM float64) ([]geo.Location, error) {
	return c.inner.Snap(ctx, locations, profile, radiusM)
}

func (c *cachedClient) Directions(ctx context.Context, from, to geo.Location, mot domain.TransportType) (Result, error) {
	if mot == domain.SeaVessel {
		return seaVesselDirections(from, to), nil
	}

	key := oraclecache.Key{Mot: mot, From: from, To: to}
	entry, err := c.cache.GetOrCompute(key, func() (oraclecache.Entry, error) {
		res, err := c.inner.Directions(ctx, from, to, mot)
		if err != nil {
			return oraclecache.Entry{}, err
		}
		return oraclecache.Entry{DistanceM: res.DistanceM, DurationS: res.DurationS, Polyline: res.Polyline}, nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{DistanceM: entry.DistanceM, DurationS: entry.DurationS, Polyline: entry.Polyline}, nil
}

func wrapExternalErr(op string, err error) error {
	return &domain.ExternalServiceError{Op: op, Reason: fmt.Sprintf("oracle request failed: %v", err), Err: err}
}
