package latlon

import (
	"errors"
	"math"
)

// ExpeIntersection enables Intersection. The computation is known to give
// wrong answers for some configurations and is kept out of the default path.
const ExpeIntersection = "gc-intersection"

var (
	ErrExperimentDisabled = errors.New("experiment '" + ExpeIntersection + "' is not enabled")
	ErrNoIntersection     = errors.New("great circles have no unique intersection")
)

// Intersection returns where the great circle leaving p1 on brng1 crosses the
// one leaving p2 on brng2. It only runs when expes[ExpeIntersection] is set.
func Intersection(expes map[string]bool, p1 LatLon, brng1 float64, p2 LatLon, brng2 float64) (LatLon, error) {
	if !expes[ExpeIntersection] {
		return LatLon{}, ErrExperimentDisabled
	}

	φ1 := toRadians(p1.lat)
	φ2 := toRadians(p2.lat)
	θ13 := toRadians(brng1)
	θ23 := toRadians(brng2)
	Δλ := toRadians(p2.lon - p1.lon)

	δ12 := haversine.angularDistance(p1, p2)
	if math.Abs(δ12) < ε {
		return p1, nil
	}

	cosθa := (math.Sin(φ2) - math.Sin(φ1)*math.Cos(δ12)) / (math.Sin(δ12) * math.Cos(φ1))
	cosθb := (math.Sin(φ1) - math.Sin(φ2)*math.Cos(δ12)) / (math.Sin(δ12) * math.Cos(φ2))
	θa := math.Acos(clamp1(cosθa))
	θb := math.Acos(clamp1(cosθb))

	θ12, θ21 := 2*π-θa, θb
	if math.Sin(Δλ) > 0 {
		θ12, θ21 = θa, 2*π-θb
	}

	α1 := θ13 - θ12
	α2 := θ21 - θ23

	if math.Abs(math.Sin(α1)) < ε && math.Abs(math.Sin(α2)) < ε {
		return LatLon{}, ErrNoIntersection
	}
	if math.Sin(α1)*math.Sin(α2) < 0 {
		return LatLon{}, ErrNoIntersection
	}

	cosα3 := -math.Cos(α1)*math.Cos(α2) + math.Sin(α1)*math.Sin(α2)*math.Cos(δ12)
	δ13 := math.Atan2(math.Sin(δ12)*math.Sin(α1)*math.Sin(α2), math.Cos(α2)+math.Cos(α1)*cosα3)

	return Destination(p1, brng1, δ13*EarthRadiusNm), nil
}
