package latlon

import "github.com/sourcegraph/conc/iter"

// DistancesFrom returns Distance(origin, t) for every target, in target
// order. Pairs are evaluated concurrently.
func DistancesFrom(origin LatLon, targets []LatLon) []float64 {
	return iter.Map(targets, func(t *LatLon) float64 {
		return Distance(origin, *t)
	})
}
