package routegraph

import (
	"multimodal-router/internal/config"
	"multimodal-router/internal/domain"
)

// Build constructs the directed multi-modal graph over nodes, per
// spec.md §4.6. If the request's preconditions fail — no START/END,
// or either endpoint has no suitable node near it under the rules
// below — it returns an empty graph alongside an
// InfeasibleRequestError; callers must still treat the returned graph
// as the canonical (empty) result rather than a partial one.
func Build(nodes []domain.Node, weather domain.WeatherConditions) (*Graph, error) {
	g := NewGraph()

	start, end, ok := startEnd(nodes)
	if !ok {
		return g, &domain.InfeasibleRequestError{Reason: "no START or END node in the eligible node set"}
	}

	if !startLinkFeasible(start, nodes) {
		return g, &domain.InfeasibleRequestError{Reason: "no node lies within walking distance of START"}
	}
	if !endLinkFeasible(end, nodes) {
		return g, &domain.InfeasibleRequestError{Reason: "no node can reach END under any mode"}
	}

	carStops := carStopSet(nodes)
	pois, others := partition(nodes, carStops)

	for _, a := range pois {
		for _, b := range pois {
			if a.UID() == b.UID() {
				continue
			}
			addEdgesForPair(g, a, b, others, weather)
		}
	}

	return g, nil
}

func startEnd(nodes []domain.Node) (start, end domain.Node, ok bool) {
	for _, n := range nodes {
		if start == nil && domain.IsStartPoint(n) {
			start = n
		}
		if end == nil && domain.IsEndPoint(n) {
			end = n
		}
	}
	return start, end, start != nil && end != nil
}

func startLinkFeasible(start domain.Node, nodes []domain.Node) bool {
	for _, o := range nodes {
		if o.UID() == start.UID() {
			continue
		}
		if start.Location().DistanceTo(o.Location()) <= config.MaxWalkDistanceM {
			return true
		}
	}
	return false
}

func endLinkFeasible(end domain.Node, nodes []domain.Node) bool {
	for _, o := range nodes {
		if o.UID() == end.UID() {
			continue
		}
		d := end.Location().DistanceTo(o.Location())
		if domain.IsCarStop(o) && d <= config.MaxWalkDistanceM {
			return true
		}
		if domain.IsScooter(o) && d <= config.MaxScooterDistanceM+config.MaxWalkDistanceM {
			return true
		}
		if domain.IsSeaVesselStop(o) && d <= config.MaxWalkDistanceM {
			return true
		}
	}
	return false
}

func carStopSet(nodes []domain.Node) []domain.Node {
	var out []domain.Node
	for _, n := range nodes {
		if domain.IsCarStop(n) {
			out = append(out, n)
		}
	}
	return out
}

// partition splits the eligible node set into pois (points, scooters,
// out-of-lot cars, and all stops including car stops and ports) and
// others (buses, sea vessels, and cars parked at a car stop), per the
// original implementation's create_graph partitioning.
func partition(nodes []domain.Node, carStops []domain.Node) (pois, others []domain.Node) {
	for _, n := range nodes {
		switch {
		case domain.IsBus(n), domain.IsSeaVessel(n):
			others = append(others, n)
		case domain.IsCar(n) && nearAny(n, carStops):
			others = append(others, n)
		default:
			pois = append(pois, n)
		}
	}
	return pois, others
}

func nearAny(n domain.Node, candidates []domain.Node) bool {
	for _, c := range candidates {
		if n.Location().DistanceTo(c.Location()) < config.MaxDistanceFromStopM {
			return true
		}
	}
	return false
}

func existsCarNear(loc domain.Node, others []domain.Node) bool {
	for _, o := range others {
		if domain.IsCar(o) && loc.Location().DistanceTo(o.Location()) < config.MaxDistanceFromStopM {
			return true
		}
	}
	return false
}

func existsSeaVesselNear(loc domain.Node, others []domain.Node) bool {
	for _, o := range others {
		if domain.IsSeaVessel(o) && loc.Location().DistanceTo(o.Location()) < config.MaxDistanceFromStopM {
			return true
		}
	}
	return false
}

// vehicleAtStop reports whether b (a Stop) has a co-located vehicle of
// the kind it serves: a car for a CAR_STOP, a sea vessel for a
// SEA_VESSEL_STOP.
func vehicleAtStop(b domain.Node, others []domain.Node) bool {
	if domain.IsCarStop(b) && existsCarNear(b, others) {
		return true
	}
	if domain.IsSeaVesselStop(b) && existsSeaVesselNear(b, others) {
		return true
	}
	return false
}

func addEdgesForPair(g *Graph, a, b domain.Node, others []domain.Node, weather domain.WeatherConditions) {
	line := a.Location().DistanceTo(b.Location())
	inflated := config.Factor * line

	// FOOT: from START or any Stop, within walking distance — except
	// between two SEA_VESSEL_STOPs.
	if (domain.IsStartPoint(a) || domain.IsStop(a)) && inflated <= config.MaxWalkDistanceM {
		canWalk := !(domain.IsSeaVesselStop(a) && domain.IsSeaVesselStop(b))
		if canWalk {
			g.AddEdge(a, b, domain.Foot, config.WalkCost)
		}
	}

	// SCOOTER: dismount onto a car, an eligible stop, or END.
	if domain.IsVehicle(a) && !weather.IsRaining && domain.IsScooter(a) {
		dismountable := domain.IsCar(b) || (domain.IsStop(b) && vehicleAtStop(b, others)) || domain.IsEndPoint(b)
		if dismountable && inflated <= config.MaxScooterDistanceM+config.MaxWalkDistanceM {
			g.AddEdge(a, b, domain.Scooter, config.ScooterRentCost)
		}
	}

	// CAR (out of lot): drive a free-floating car into a CAR_STOP.
	if domain.IsVehicle(a) && domain.IsCar(a) && domain.IsCarStop(b) && inflated <= config.MaxCarDistanceM {
		g.AddEdge(a, b, domain.Car, config.CarRentCost)
	}

	// CAR (lot-to-lot) and SEA_VESSEL: both endpoints are stops.
	if domain.IsStop(a) && domain.IsStop(b) {
		if domain.IsCarStop(a) && domain.IsCarStop(b) && existsCarNear(a, others) {
			g.AddEdge(a, b, domain.Car, config.CarRentCost)
		}
		if !weather.IsWindy && domain.IsSeaVesselStop(a) && domain.IsSeaVesselStop(b) && existsSeaVesselNear(a, others) {
			g.AddEdge(a, b, domain.SeaVessel, config.SeaVesselTripCost)
		}
	}
}
