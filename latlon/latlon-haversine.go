package latlon

import "math"

// Calculator is the distance/bearing strategy used by callers that do not
// care which Earth model backs it. Distances are in nautical miles, bearings
// in degrees.
type Calculator interface {
	DistanceTo(from, to LatLon) float64
	BearingTo(from, to LatLon) float64
	DistanceAndBearingTo(from, to LatLon) (float64, float64)
	Destination(from LatLon, bearing float64, distance float64) LatLon
}

// LatLonHaversine works on a sphere of radius EarthRadiusNm.
type LatLonHaversine struct{}

var _ Calculator = LatLonHaversine{}

func (LatLonHaversine) initialBearingTo(from, to LatLon) float64 {
	φ1 := toRadians(from.lat)
	φ2 := toRadians(to.lat)

	Δλ := toRadians(to.lon - from.lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	b := toDegrees(θ)

	return wrap360(b)
}

func (LatLonHaversine) angularDistance(from, to LatLon) float64 {
	φ1 := toRadians(from.lat)
	φ2 := toRadians(to.lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.lon - from.lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	a = math.Min(a, 1)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (hav LatLonHaversine) DistanceTo(from, to LatLon) float64 {
	return EarthRadiusNm * hav.angularDistance(from, to)
}

func (hav LatLonHaversine) BearingTo(from, to LatLon) float64 {
	return hav.initialBearingTo(from, to)
}

func (hav LatLonHaversine) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	return hav.DistanceTo(from, to), hav.initialBearingTo(from, to)
}

func (LatLonHaversine) Destination(from LatLon, bearing float64, distance float64) LatLon {
	φ1 := toRadians(from.lat)
	λ1 := toRadians(from.lon)
	θ := toRadians(bearing)

	δ := distance / EarthRadiusNm

	φ2 := math.Asin(clamp1(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	λ2 = wrapPi(λ2)

	return New(toDegrees(φ2), toDegrees(λ2))
}

var haversine = LatLonHaversine{}

// Distance is the great-circle distance in nautical miles.
func Distance(p1, p2 LatLon) float64 {
	return haversine.DistanceTo(p1, p2)
}

// Bearing is the initial great-circle bearing from start to end, in [0,360).
func Bearing(start, end LatLon) float64 {
	return haversine.BearingTo(start, end)
}

// DistanceAndBearing returns Distance and Bearing in one call.
func DistanceAndBearing(start, end LatLon) (float64, float64) {
	return haversine.DistanceAndBearingTo(start, end)
}

// FinalBearing is the bearing on arrival at end, in [0,360).
func FinalBearing(start, end LatLon) float64 {
	return wrap360(Bearing(end, start) + 180)
}

// RelativeBearing is the bearing of end seen from start, relative to
// heading. Negative values are to the left, in (-180,180].
func RelativeBearing(start LatLon, heading float64, end LatLon) float64 {
	return wrap180(Bearing(start, end) - heading)
}

// Destination moves start distance nautical miles along heading.
func Destination(start LatLon, heading, distance float64) LatLon {
	return haversine.Destination(start, heading, distance)
}

// CourseSpeedTime is the position reached after hours at speed knots on
// course. A stopped vessel stays at start.
func CourseSpeedTime(start LatLon, course, speed, hours float64) LatLon {
	if speed <= 0 {
		return start
	}
	return Destination(start, course, speed*hours)
}
