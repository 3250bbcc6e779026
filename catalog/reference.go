package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/a-bouts/nav-cpa/latlon"
)

// Reference is the fixed table of named locations available without a
// catalog file.
type Reference map[string]latlon.LatLon

var References = Reference{
	"equator-prime-meridian": latlon.New(0, 0),
	"greenwich":              latlon.New(51.4769, 0),
	"equator-60e":            latlon.New(0, 60),
	"equator-60w":            latlon.New(0, -60),
	"north-pole":             latlon.New(90, 0),
	"south-pole":             latlon.New(-90, 0),
	"san-diego":              latlon.New(32.73, -117.19),
	"philadelphia":           latlon.New(39.867, -75.240),
	"los-angeles-harbor":     latlon.New(33.7415, -118.23083),
	"san-pedro-bay":          latlon.New(33.70733, -118.29333),
}

func (r Reference) Resolve(name string) (latlon.LatLon, error) {
	ll, found := r[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return latlon.LatLon{}, fmt.Errorf("%w: '%s'", ErrUnknownLocation, name)
	}
	return ll, nil
}

func (r Reference) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Chain asks each resolver in turn; the first that knows the name wins.
type Chain []Resolver

func (c Chain) Resolve(name string) (latlon.LatLon, error) {
	for _, r := range c {
		ll, err := r.Resolve(name)
		if err == nil {
			return ll, nil
		}
		if !errors.Is(err, ErrUnknownLocation) {
			return latlon.LatLon{}, err
		}
	}
	return latlon.LatLon{}, fmt.Errorf("%w: '%s'", ErrUnknownLocation, name)
}

// Literal resolves "lat,lon" strings without any table.
type Literal struct{}

func (Literal) Resolve(name string) (latlon.LatLon, error) {
	if !strings.Contains(name, ",") {
		return latlon.LatLon{}, fmt.Errorf("%w: '%s'", ErrUnknownLocation, name)
	}
	return latlon.Parse(name)
}
