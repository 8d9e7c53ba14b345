// Package config holds the fixed numeric policy the route planner is
// built around. None of these are meant to be runtime-tunable, so they
// live as untyped constants rather than a parsed configuration file.
package config

const (
	// MaxWalkDistanceM is the longest FOOT edge the graph builder or
	// evaluator will allow, in meters.
	MaxWalkDistanceM = 1000.0

	// MaxScooterDistanceM is the range of a single scooter rental
	// before a mid-edge handoff is required, in meters.
	MaxScooterDistanceM = 4000.0

	// MaxCarDistanceM is the longest CAR edge allowed, in meters.
	MaxCarDistanceM = 12000.0

	// MaxDistanceFromStopM is how close a vehicle must be to a stop to
	// be considered co-located with it.
	MaxDistanceFromStopM = 100.0

	// AvgSeaVesselVelocityMPS is used to estimate SEA_VESSEL duration
	// when the oracle is bypassed for that mode.
	AvgSeaVesselVelocityMPS = 3.0

	// AvgCarParkingDurationS is added to a path's duration whenever an
	// edge's source is a CAR vehicle (time spent fetching/parking it).
	AvgCarParkingDurationS = 100.0

	// AvgTrafficJamDelayS is added per high-traffic location a CAR or
	// BUS edge's polyline passes within 10m of.
	AvgTrafficJamDelayS = 300.0

	// TrafficProximityThresholdM is the distance within which a
	// high-traffic location counts against an edge's polyline.
	TrafficProximityThresholdM = 10.0

	// Costs, in the planner's abstract cost unit.
	WalkCost         = 0
	CarRentCost      = 20
	BusTripCost      = 3
	ScooterRentCost  = 5
	SeaVesselTripCost = 10

	// Factor inflates a straight-line haversine distance to a rough
	// estimate of real road/path distance during graph construction;
	// the evaluator later replaces it with the oracle's real number.
	Factor = 1.2

	// DBSCANRadiusM is the clustering radius for the e-scooter reducer,
	// compared directly against great-circle distance in meters (the
	// same test as angular eps DBSCANRadiusM / geo.EarthRadiusM).
	DBSCANRadiusM = 500.0

	// PathEnumerationCutoff bounds the number of edges in any
	// enumerated path.
	PathEnumerationCutoff = 6
)
