package latlon

// Side-of-line tests treat latitude and longitude as plane coordinates. They
// are only meaningful for positions a few degrees apart.

func cross(start, end, pos LatLon) float64 {
	x := end.lon - start.lon
	y := end.lat - start.lat

	return x*(pos.lat-start.lat) - (pos.lon-start.lon)*y
}

// IsLeftOf reports whether p lies left of the line from start to end.
func (p LatLon) IsLeftOf(start, end LatLon) bool {
	return cross(start, end, p) > 0
}

// IsRightOf reports whether p lies right of the line from start to end.
func (p LatLon) IsRightOf(start, end LatLon) bool {
	return cross(start, end, p) < 0
}
