package domain

import "multimodal-router/internal/geo"

// WeatherConditions gates scooter and sea-vessel eligibility.
type WeatherConditions struct {
	IsRaining bool
	IsWindy   bool
}

// TrafficConditions is an ordered list of locations known to be
// experiencing high traffic; CAR and BUS edges whose polyline passes
// near one of these incur a delay penalty.
type TrafficConditions struct {
	HighTrafficLocations []geo.Location
}
