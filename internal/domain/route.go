package domain

// FeasibleRoute is one surviving, fully-evaluated path through the
// multi-modal graph, with the per-mode metrics the ranker filters and
// sorts on.
type FeasibleRoute struct {
	Path    []string // node uids, in visit order (possibly rewritten by a scooter split)
	Pattern string   // stop markers (*) and mot tags (F/S/C/B/V)
	Edges   int      // len(Path) - 1

	TotalDistanceM  float64
	TotalDurationS  float64
	TotalCost       int

	WalkCount        int
	WalkDistanceM    float64
	CarCount         int
	CarDistanceM     float64
	EscooterCount    int
	EscooterDistanceM float64
	SeaVesselCount    int
	SeaVesselDistanceM float64

	// ExpectedIntermediateTime is the cumulative duration in seconds
	// at each visited node, starting with 0 and monotonically
	// non-decreasing. len(ExpectedIntermediateTime) == len(Path).
	ExpectedIntermediateTime []float64
}

// Feature looks up the named feature's value on the row, for use by
// the ranker's generic sort-by-feature-tuple comparator.
func (r *FeasibleRoute) Feature(f Feature) float64 {
	switch f {
	case FeatureEdges:
		return float64(r.Edges)
	case FeatureTotalDistance:
		return r.TotalDistanceM
	case FeatureTotalDuration:
		return r.TotalDurationS
	case FeatureTotalCost:
		return float64(r.TotalCost)
	case FeatureWalkCount:
		return float64(r.WalkCount)
	case FeatureWalkDistance:
		return r.WalkDistanceM
	case FeatureCarCount:
		return float64(r.CarCount)
	case FeatureCarDistance:
		return r.CarDistanceM
	case FeatureEscooterCount:
		return float64(r.EscooterCount)
	case FeatureEscooterDistance:
		return r.EscooterDistanceM
	case FeatureSeaVesselCount:
		return float64(r.SeaVesselCount)
	case FeatureSeaVesselDistance:
		return r.SeaVesselDistanceM
	default:
		return 0
	}
}

// CountForAvoid returns the per-mode count the ranker checks when
// filtering out routes that use an avoided mode of transport.
func (r *FeasibleRoute) CountForAvoid(a Avoid) int {
	switch a {
	case AvoidWalk:
		return r.WalkCount
	case AvoidCar:
		return r.CarCount
	case AvoidEscooter:
		return r.EscooterCount
	case AvoidSeaVessel:
		return r.SeaVesselCount
	default:
		return 0
	}
}
