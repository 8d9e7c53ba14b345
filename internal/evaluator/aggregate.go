package evaluator

import (
	"multimodal-router/internal/config"
	"multimodal-router/internal/domain"
	"multimodal-router/internal/geo"
	"multimodal-router/internal/oracle"
)

// applyEdge folds one evaluated edge's oracle result into row's
// running totals: per-mode count/distance, total distance/duration
// (including the traffic-jam and parking penalties), total cost, and
// the cumulative expected_intermediate_time series. Matching the
// original, the intermediate-time entry appended for this edge is the
// running total plus the edge's own raw duration only — the
// traffic-jam and parking penalties land on TotalDurationS but never
// on the per-node timeline.
func applyEdge(row *domain.FeasibleRoute, a, b domain.Node, mot domain.TransportType, res oracle.Result, traffic domain.TrafficConditions) {
	last := row.ExpectedIntermediateTime[len(row.ExpectedIntermediateTime)-1]
	row.ExpectedIntermediateTime = append(row.ExpectedIntermediateTime, last+res.DurationS)

	duration := res.DurationS
	if mot == domain.Car || mot == domain.Bus {
		jams := trafficJamsAlong(res.Polyline, traffic.HighTrafficLocations)
		duration += float64(jams) * config.AvgTrafficJamDelayS
	}
	if domain.IsCar(a) {
		duration += config.AvgCarParkingDurationS
	}

	row.TotalDistanceM += res.DistanceM
	row.TotalDurationS += duration
	row.TotalCost += costFor(mot)

	switch mot {
	case domain.Foot:
		row.WalkCount++
		row.WalkDistanceM += res.DistanceM
	case domain.Car:
		row.CarCount++
		row.CarDistanceM += res.DistanceM
	case domain.Scooter:
		row.EscooterCount++
		row.EscooterDistanceM += res.DistanceM
	case domain.SeaVessel:
		row.SeaVesselCount++
		row.SeaVesselDistanceM += res.DistanceM
	}
}

func costFor(mot domain.TransportType) int {
	switch mot {
	case domain.Foot:
		return config.WalkCost
	case domain.Car:
		return config.CarRentCost
	case domain.Bus:
		return config.BusTripCost
	case domain.Scooter:
		return config.ScooterRentCost
	case domain.SeaVessel:
		return config.SeaVesselTripCost
	default:
		return 0
	}
}

// trafficJamsAlong counts how many high-traffic locations lie within
// the jam-proximity threshold of any segment of polyline.
func trafficJamsAlong(polyline []geo.Location, highTraffic []geo.Location) int {
	count := 0
	for _, loc := range highTraffic {
		if geo.PathApproachesLocation(polyline, loc, config.TrafficProximityThresholdM) {
			count++
		}
	}
	return count
}
