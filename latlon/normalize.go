package latlon

import "math"

const π = math.Pi

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

// reflectLatitude folds a latitude back from beyond a pole. The longitude is
// left alone, so a position pushed over a pole does not end up on the
// opposite meridian.
func reflectLatitude(lat float64) float64 {
	if lat > 90 {
		return 180 - lat
	}
	if lat < -90 {
		return -180 - lat
	}
	return lat
}

// reflectLongitude folds a longitude back from beyond the antimeridian the
// same way reflectLatitude does at the poles.
func reflectLongitude(lon float64) float64 {
	if lon > 180 {
		return 360 - lon
	}
	if lon < -180 {
		return -360 - lon
	}
	return lon
}

// wrap360 maps any angle in degrees into [0,360).
func wrap360(d float64) float64 {
	if 0.0 < d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d == 0 || d >= 360.0 {
		return 0
	}
	return d
}

// wrap180 maps any angle in degrees into (-180,180].
func wrap180(d float64) float64 {
	d = wrap360(d)
	if d > 180.0 {
		d -= 360.0
	}
	return d
}

// wrapPi maps any angle in radians into (-π,π].
func wrapPi(a float64) float64 {
	a = math.Mod(a+π, 2*π)
	if a <= 0 {
		a += 2 * π
	}
	return a - π
}

// clamp1 keeps asin/acos arguments inside their domain when rounding pushes
// them just past ±1.
func clamp1(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
