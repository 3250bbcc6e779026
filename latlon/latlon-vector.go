package latlon

import (
	"errors"
	"math"
)

// ErrUndefinedGreatCircle is returned when two positions are identical or
// antipodal, so no single great circle passes through both.
var ErrUndefinedGreatCircle = errors.New("great circle undefined for identical or antipodal positions")

const ε = 1e-12

type vector [3]float64

func toVector(p LatLon) vector {
	φ := toRadians(p.lat)
	λ := toRadians(p.lon)
	return vector{math.Cos(φ) * math.Cos(λ), math.Cos(φ) * math.Sin(λ), math.Sin(φ)}
}

func (v vector) cross(w vector) vector {
	return vector{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

func (v vector) dot(w vector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

func (v vector) length() float64 {
	return math.Sqrt(v.dot(v))
}

func (v vector) scale(s float64) vector {
	return vector{v[0] * s, v[1] * s, v[2] * s}
}

func (v vector) toLatLon() LatLon {
	φ := math.Atan2(v[2], math.Hypot(v[0], v[1]))
	λ := math.Atan2(v[1], v[0])
	return New(toDegrees(φ), toDegrees(λ))
}

// Midpoint is halfway along the great circle from p1 to p2.
func Midpoint(p1, p2 LatLon) LatLon {
	φ1 := toRadians(p1.lat)
	λ1 := toRadians(p1.lon)
	φ2 := toRadians(p2.lat)
	Δλ := toRadians(p2.lon - p1.lon)

	Bx := math.Cos(φ2) * math.Cos(Δλ)
	By := math.Cos(φ2) * math.Sin(Δλ)

	φm := math.Atan2(math.Sin(φ1)+math.Sin(φ2), math.Hypot(math.Cos(φ1)+Bx, By))
	λm := wrapPi(λ1 + math.Atan2(By, math.Cos(φ1)+Bx))

	return New(toDegrees(φm), toDegrees(λm))
}

// IntermediatePoint is the position at fraction f of the way from p1 to p2
// along the great circle. f=0 and f=1 return the end points unchanged.
func IntermediatePoint(p1, p2 LatLon, f float64) (LatLon, error) {
	if f == 0 {
		return p1, nil
	}
	if f == 1 {
		return p2, nil
	}

	δ := haversine.angularDistance(p1, p2)
	sinδ := math.Sin(δ)
	if math.Abs(sinδ) < ε {
		if δ < π/2 {
			return p1, nil
		}
		return LatLon{}, ErrUndefinedGreatCircle
	}

	φ1 := toRadians(p1.lat)
	λ1 := toRadians(p1.lon)
	φ2 := toRadians(p2.lat)
	λ2 := toRadians(p2.lon)

	a := math.Sin((1-f)*δ) / sinδ
	b := math.Sin(f*δ) / sinδ

	x := a*math.Cos(φ1)*math.Cos(λ1) + b*math.Cos(φ2)*math.Cos(λ2)
	y := a*math.Cos(φ1)*math.Sin(λ1) + b*math.Cos(φ2)*math.Sin(λ2)
	z := a*math.Sin(φ1) + b*math.Sin(φ2)

	return vector{x, y, z}.toLatLon(), nil
}

// NorthernmostPoint is the vertex of the great circle through p1 and p2.
func NorthernmostPoint(p1, p2 LatLon) (LatLon, error) {
	n := toVector(p1).cross(toVector(p2))
	l := n.length()
	if l < ε {
		return LatLon{}, ErrUndefinedGreatCircle
	}
	n = n.scale(1 / l)

	// The vertex lies 90° from the pole of the circle on the pole's meridian.
	φn := toDegrees(math.Asin(clamp1(n[2])))
	λn := toDegrees(math.Atan2(n[1], n[0]))

	lat := φn + 90
	lon := λn
	if lat > 90 {
		lat = 180 - lat
		lon += 180
	}
	return New(lat, wrap180(lon)), nil
}

// EquatorCrossings are the two antipodal points where the great circle
// through p1 and p2 crosses the equator.
func EquatorCrossings(p1, p2 LatLon) (LatLon, LatLon, error) {
	top, err := NorthernmostPoint(p1, p2)
	if err != nil {
		return LatLon{}, LatLon{}, err
	}
	return New(0, wrap180(top.lon+90)), New(0, wrap180(top.lon-90)), nil
}
