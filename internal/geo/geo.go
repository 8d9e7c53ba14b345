// Package geo provides the value types and great-circle math the route
// planner builds on: a Location, haversine distance, point-to-segment
// distance, and a small set of polyline helpers.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusM is the mean Earth radius in meters, used for all
// great-circle calculations in this package.
const EarthRadiusM = 6_371_000.0

// Location is a (latitude, longitude) pair. It has value semantics:
// two Locations are equal iff their coordinates are equal. A struct
// literal is not validated; use New to construct a validated one.
type Location struct {
	Lat float64
	Lng float64
}

// New builds a Location, validating that both coordinates are finite
// and within their legal ranges.
func New(lat, lng float64) (Location, error) {
	loc := Location{Lat: lat, Lng: lng}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate reports whether the location's coordinates are finite and
// within [-90, 90] for latitude and [-180, 180] for longitude.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsInf(l.Lat, 0) || math.IsNaN(l.Lng) || math.IsInf(l.Lng, 0) {
		return fmt.Errorf("geo: lat/lng must be finite, got (%v, %v)", l.Lat, l.Lng)
	}
	if l.Lat < -90.0 || l.Lat > 90.0 {
		return fmt.Errorf("geo: lat must be in [-90, 90], got %v", l.Lat)
	}
	if l.Lng < -180.0 || l.Lng > 180.0 {
		return fmt.Errorf("geo: lng must be in [-180, 180], got %v", l.Lng)
	}
	return nil
}

func (l Location) String() string {
	return fmt.Sprintf("Location(lat=%v, lng=%v)", l.Lat, l.Lng)
}

// DistanceTo returns the great-circle distance in meters between l and
// other, via the haversine formula.
func (l Location) DistanceTo(other Location) float64 {
	lat1 := l.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - l.Lat) * math.Pi / 180
	dLng := (other.Lng - l.Lng) * math.Pi / 180

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)
	a := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLng*sinDLng
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// ToLngLat returns the [lng, lat] pair used by GeoJSON and the
// directions/snap oracle's wire format.
func (l Location) ToLngLat() [2]float64 {
	return [2]float64{l.Lng, l.Lat}
}

// FromLngLat builds a Location from a [lng, lat] pair (GeoJSON order).
func FromLngLat(pair [2]float64) Location {
	return Location{Lat: pair[1], Lng: pair[0]}
}

// pointToSegmentDistanceM computes the distance in meters from point p
// to the segment [a, b], projecting locally (equirectangular) around p
// so ordinary planar segment-distance math applies. This is accurate
// enough for the small distances (tens of meters) the traffic-proximity
// check cares about.
func pointToSegmentDistanceM(p, a, b Location) float64 {
	// Equirectangular projection around p: x scaled by cos(latitude).
	cosLat := math.Cos(p.Lat * math.Pi / 180)
	project := func(loc Location) (float64, float64) {
		x := (loc.Lng - p.Lng) * cosLat
		y := loc.Lat - p.Lat
		return x, y
	}

	px, py := 0.0, 0.0
	ax, ay := project(a)
	bx, by := project(b)

	abx, aby := bx-ax, by-ay
	apx, apy := px-ax, py-ay

	lenSq := abx*abx + aby*aby
	var t float64
	if lenSq > 0 {
		t = (apx*abx + apy*aby) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	closestX := ax + t*abx
	closestY := ay + t*aby

	// Convert the planar offset back to degrees, then to meters via a
	// local haversine from p to the closest point.
	closestLng := p.Lng + closestX/cosLat
	closestLat := p.Lat + closestY
	closest := Location{Lat: closestLat, Lng: closestLng}
	return p.DistanceTo(closest)
}

// PointToSegmentDistanceM returns the distance in meters from p to the
// segment [a, b].
func PointToSegmentDistanceM(p, a, b Location) float64 {
	return pointToSegmentDistanceM(p, a, b)
}

// PathApproachesLocation reports whether any segment of polyline comes
// within thresholdM meters of target. An empty polyline never
// approaches anything; a single-point polyline is treated as a
// degenerate segment.
func PathApproachesLocation(polyline []Location, target Location, thresholdM float64) bool {
	if len(polyline) == 0 {
		return false
	}
	if len(polyline) == 1 {
		return pointToSegmentDistanceM(target, polyline[0], polyline[0]) <= thresholdM
	}
	for i := 0; i < len(polyline)-1; i++ {
		if pointToSegmentDistanceM(target, polyline[i], polyline[i+1]) <= thresholdM {
			return true
		}
	}
	return false
}

// CumulativeDistanceCutoff walks polyline from its start, accumulating
// great-circle distance between consecutive vertices, and returns the
// last vertex reached before the running total first exceeds maxM. If
// the polyline's total length never exceeds maxM, the final vertex is
// returned. Used to locate a scooter drop-off point when a single
// SCOOTER edge exceeds the maximum scooter range.
func CumulativeDistanceCutoff(polyline []Location, maxM float64) Location {
	if len(polyline) == 0 {
		return Location{}
	}
	total := 0.0
	for i := 1; i < len(polyline); i++ {
		total += polyline[i-1].DistanceTo(polyline[i])
		if total > maxM {
			return polyline[i-1]
		}
	}
	return polyline[len(polyline)-1]
}

// PointAlongLine returns the point lying on the great-circle path from
// a toward b at distanceM meters from a. distanceM is clamped to
// [0, distance(a,b)] so the result always lies on the segment.
func PointAlongLine(a, b Location, distanceM float64) Location {
	total := a.DistanceTo(b)
	if total == 0 || distanceM <= 0 {
		return a
	}
	if distanceM >= total {
		return b
	}

	lat1 := a.Lat * math.Pi / 180
	lng1 := a.Lng * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lng2 := b.Lng * math.Pi / 180

	dLat := lat2 - lat1
	dLng := lng2 - lng1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	h = math.Min(1.0, math.Max(0.0, h))
	delta := 2 * math.Asin(math.Sqrt(h))
	if delta == 0 {
		return a
	}

	t := distanceM / total
	sinDelta := math.Sin(delta)
	aWeight := math.Sin((1-t)*delta) / sinDelta
	bWeight := math.Sin(t*delta) / sinDelta

	toXYZ := func(lat, lng float64) (float64, float64, float64) {
		cosLat := math.Cos(lat)
		return cosLat * math.Cos(lng), cosLat * math.Sin(lng), math.Sin(lat)
	}
	x1, y1, z1 := toXYZ(lat1, lng1)
	x2, y2, z2 := toXYZ(lat2, lng2)

	x := aWeight*x1 + bWeight*x2
	y := aWeight*y1 + bWeight*y2
	z := aWeight*z1 + bWeight*z2
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return a
	}
	x, y, z = x/r, y/r, z/r

	lat := math.Atan2(z, math.Sqrt(x*x+y*y)) * 180 / math.Pi
	lng := math.Atan2(y, x) * 180 / math.Pi
	return Location{Lat: lat, Lng: lng}
}
