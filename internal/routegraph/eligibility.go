package routegraph

import "multimodal-router/internal/domain"

// Eligible filters nodes down to the set the graph builder may use,
// per spec.md §4.4: weather and explicit user exclusions remove whole
// classes of vehicle/stop, while START and END always pass through.
func Eligible(nodes []domain.Node, weather domain.WeatherConditions, excludeCars, excludeScooters, excludeSeaVessels bool) []domain.Node {
	out := make([]domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if domain.IsPoint(n) {
			out = append(out, n)
			continue
		}

		if weather.IsRaining || excludeScooters {
			if domain.IsScooter(n) || domain.IsScooterStop(n) {
				continue
			}
		}
		if excludeCars {
			if domain.IsCar(n) || domain.IsCarStop(n) {
				continue
			}
		}
		if weather.IsWindy || excludeSeaVessels {
			if domain.IsSeaVessel(n) || domain.IsSeaVesselStop(n) {
				continue
			}
		}

		out = append(out, n)
	}
	return out
}
