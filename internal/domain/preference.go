package domain

// Feature is a ranking key drawn from the closed vocabulary the
// ranker accepts in UserPreference.Features.
type Feature string

const (
	FeatureEdges            Feature = "edges"
	FeatureTotalDistance    Feature = "total_distance"
	FeatureTotalDuration    Feature = "total_duration"
	FeatureTotalCost        Feature = "total_cost"
	FeatureWalkCount        Feature = "walk_count"
	FeatureWalkDistance     Feature = "walk_distance"
	FeatureCarCount         Feature = "car_count"
	FeatureCarDistance      Feature = "car_distance"
	FeatureEscooterCount    Feature = "escooter_count"
	FeatureEscooterDistance Feature = "escooter_distance"
	FeatureSeaVesselCount   Feature = "sea_vessel_count"
	FeatureSeaVesselDistance Feature = "sea_vessel_distance"
)

var allowedFeatures = map[Feature]bool{
	FeatureEdges:             true,
	FeatureTotalDistance:     true,
	FeatureTotalDuration:     true,
	FeatureTotalCost:         true,
	FeatureWalkCount:         true,
	FeatureWalkDistance:      true,
	FeatureCarCount:          true,
	FeatureCarDistance:       true,
	FeatureEscooterCount:     true,
	FeatureEscooterDistance:  true,
	FeatureSeaVesselCount:    true,
	FeatureSeaVesselDistance: true,
}

// Avoid is a mode of transport the user wants excluded from results.
type Avoid string

const (
	AvoidWalk      Avoid = "walk"
	AvoidCar       Avoid = "car"
	AvoidEscooter  Avoid = "escooter"
	AvoidSeaVessel Avoid = "sea_vessel"
)

var allowedAvoids = map[Avoid]bool{
	AvoidWalk:      true,
	AvoidCar:       true,
	AvoidEscooter:  true,
	AvoidSeaVessel: true,
}

// UserPreference orders feasible routes by an ordered feature tuple
// and/or drops routes that use an avoided mode of transport.
type UserPreference struct {
	Features []Feature
	Avoids   []Avoid
}

// NewUserPreference validates features and avoids against the closed
// vocabularies before returning a UserPreference.
func NewUserPreference(features []Feature, avoids []Avoid) (*UserPreference, error) {
	for _, f := range features {
		if !allowedFeatures[f] {
			return nil, &ValidationError{Field: "features", Reason: "unknown feature: " + string(f)}
		}
	}
	for _, a := range avoids {
		if !allowedAvoids[a] {
			return nil, &ValidationError{Field: "avoids", Reason: "unknown avoid: " + string(a)}
		}
	}
	return &UserPreference{Features: features, Avoids: avoids}, nil
}
