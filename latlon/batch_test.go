package latlon

import "testing"

func TestDistancesFrom(t *testing.T) {
	targets := []LatLon{greenwichUK, equator60E, equator60W, equatorPrimeMeridian, New(-33.9, 151.2)}

	d := DistancesFrom(equatorPrimeMeridian, targets)
	if len(d) != len(targets) {
		t.Fatalf("DistancesFrom returned %d distances; want %d", len(d), len(targets))
	}
	for i, target := range targets {
		if want := Distance(equatorPrimeMeridian, target); d[i] != want {
			t.Errorf("DistancesFrom[%d] = %f; want %f", i, d[i], want)
		}
	}

	if d := DistancesFrom(equatorPrimeMeridian, nil); len(d) != 0 {
		t.Errorf("DistancesFrom(nil) = %v; want empty", d)
	}
}
