package latlon

import (
	"math"
	"testing"
)

var (
	equatorPrimeMeridian = New(0, 0)
	greenwichUK          = New(51.4769, 0)
	equator60E           = New(0, 60)
	equator60W           = New(0, -60)
)

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestDistanceToSelf(t *testing.T) {
	for _, p := range []LatLon{equatorPrimeMeridian, greenwichUK, New(-89.5, 179.9), New(33.7415, -118.23083)} {
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(%s, %s) = %f; want 0", p, p, d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := New(32.73, -117.19)
	b := New(39.867, -75.240)
	if d1, d2 := Distance(a, b), Distance(b, a); !near(d1, d2, 0.5) {
		t.Errorf("Distance(a,b) = %f, Distance(b,a) = %f; want equal", d1, d2)
	}
}

func TestDistance(t *testing.T) {
	p1 := New(33.74150, -118.23083)
	p2 := New(33.70733, -118.29333)
	if d := Distance(p1, p2); !near(d, 3.7324, 0.5) {
		t.Errorf("Distance(%s, %s) = %f; want 3.7324", p1, p2, d)
	}

	// one degree of arc on the equator
	if d := Distance(New(0, 0), New(0, 1)); !near(d, 60.04, 0.01) {
		t.Errorf("Distance(0,0 -> 0,1) = %f; want 60.04", d)
	}

	// antipodes
	if d := Distance(New(0, 0), New(0, 180)); !near(d, math.Pi*EarthRadiusNm, 1e-6) {
		t.Errorf("Distance(0,0 -> 0,180) = %f; want %f", d, math.Pi*EarthRadiusNm)
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name       string
		start, end LatLon
		want       float64
	}{
		{"north", equatorPrimeMeridian, greenwichUK, 0},
		{"south", greenwichUK, equatorPrimeMeridian, 180},
		{"east", equatorPrimeMeridian, equator60E, 90},
		{"west", equatorPrimeMeridian, equator60W, 270},
		{"north east", New(-5, -5), New(5, 5), 45},
		{"across antimeridian", New(0, 179), New(0, -179), 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bearing(tt.start, tt.end)
			if !near(b, tt.want, 0.5) {
				t.Errorf("Bearing(%s, %s) = %f; want %f", tt.start, tt.end, b, tt.want)
			}
			if b < 0 || b >= 360 {
				t.Errorf("Bearing(%s, %s) = %f; want in [0,360)", tt.start, tt.end, b)
			}
		})
	}
}

func TestFinalBearing(t *testing.T) {
	if b := FinalBearing(equatorPrimeMeridian, equator60E); !near(b, 90, 1e-9) {
		t.Errorf("FinalBearing(equator -> 60E) = %f; want 90", b)
	}

	// a great circle leaving San Diego at 65.8 arrives heading further south
	start := New(32.73, -117.19)
	end := New(39.867, -75.240)
	if b := FinalBearing(start, end); b <= Bearing(start, end) || b >= 180 {
		t.Errorf("FinalBearing(%s, %s) = %f; want between %f and 180", start, end, b, Bearing(start, end))
	}
}

func TestRelativeBearing(t *testing.T) {
	start := New(0, -75)
	end := New(0, -74)

	if b := RelativeBearing(start, 45, end); !near(b, 45, 0.01) {
		t.Errorf("RelativeBearing(%s, 45, %s) = %f; want 45", start, end, b)
	}
	if b := RelativeBearing(start, 135, end); !near(b, -45, 0.01) {
		t.Errorf("RelativeBearing(%s, 135, %s) = %f; want -45", start, end, b)
	}
	if b := RelativeBearing(start, 270, end); !near(b, 180, 0.01) {
		t.Errorf("RelativeBearing(%s, 270, %s) = %f; want 180", start, end, b)
	}
}

func TestDestination(t *testing.T) {
	tests := []struct {
		course float64
		want   LatLon
	}{
		{0, New(1, 0)},
		{90, New(0, 1)},
		{180, New(-1, 0)},
		{270, New(0, -1)},
	}

	for _, tt := range tests {
		p := Destination(equatorPrimeMeridian, tt.course, 60)
		if !near(p.Lat(), tt.want.Lat(), 0.005) || !near(p.Lon(), tt.want.Lon(), 0.005) {
			t.Errorf("Destination(%s, %.0f, 60) = %s; want %s", equatorPrimeMeridian, tt.course, p, tt.want)
		}
	}
}

func TestDestinationGreatCircle(t *testing.T) {
	p := Destination(New(0, -1), 90, 120)
	if !near(p.Lat(), 0, 0.005) || !near(p.Lon(), 1, 0.005) {
		t.Errorf("Destination(0,-1, 90, 120) = %s; want 0,1", p)
	}

	p = Destination(New(32.73, -117.19), 65.8, 2053.8)
	if !near(p.Lat(), 39.867, 0.5) || !near(p.Lon(), -75.240, 0.5) {
		t.Errorf("Destination(32.73,-117.19, 65.8, 2053.8) = %s; want 39.867,-75.240", p)
	}
}

func TestDestinationStaysInRange(t *testing.T) {
	p := Destination(New(89.9, 0), 0, 120)
	if p.Lat() > 90 || p.Lat() < -90 || p.Lon() > 180 || p.Lon() < -180 {
		t.Errorf("Destination over the pole = %s; out of range", p)
	}

	p = Destination(New(0, 179.5), 90, 60)
	if !near(p.Lon(), -179.5, 0.005) {
		t.Errorf("Destination across antimeridian = %s; want 0,-179.5", p)
	}
}

func TestCourseSpeedTime(t *testing.T) {
	start := New(10, 10)
	if p := CourseSpeedTime(start, 45, 0, 10); p != start {
		t.Errorf("CourseSpeedTime(speed 0) = %s; want %s", p, start)
	}
	if p := CourseSpeedTime(start, 45, -3, 10); p != start {
		t.Errorf("CourseSpeedTime(speed -3) = %s; want %s", p, start)
	}

	p := CourseSpeedTime(equatorPrimeMeridian, 90, 12, 5)
	if !near(p.Lon(), 1, 0.005) || !near(p.Lat(), 0, 0.005) {
		t.Errorf("CourseSpeedTime(90, 12kt, 5h) = %s; want 0,1", p)
	}
}

func TestCalculator(t *testing.T) {
	var c Calculator = LatLonHaversine{}

	d, b := c.DistanceAndBearingTo(equatorPrimeMeridian, equator60E)
	if d != c.DistanceTo(equatorPrimeMeridian, equator60E) || b != c.BearingTo(equatorPrimeMeridian, equator60E) {
		t.Errorf("DistanceAndBearingTo = (%f, %f); want DistanceTo and BearingTo", d, b)
	}
}
