package latlon

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places kept on each coordinate.
const Decimals = 3

var ErrOutOfRange = errors.New("coordinate out of range")

var validate = validator.New()

// LatLon is an immutable position in decimal degrees, rounded to Decimals
// places when it is built.
type LatLon struct {
	lat float64
	lon float64
}

type bounds struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(Decimals).Float64()
	return f
}

// New rounds lat and lon. No range check is made; see NewValidated.
func New(lat, lon float64) LatLon {
	return LatLon{lat: round(lat), lon: round(lon)}
}

// NewValidated is New with a range check on both coordinates.
func NewValidated(lat, lon float64) (LatLon, error) {
	if err := validate.Struct(bounds{Lat: lat, Lon: lon}); err != nil {
		return LatLon{}, fmt.Errorf("%w: (%g,%g): %v", ErrOutOfRange, lat, lon, err)
	}
	return New(lat, lon), nil
}

// Parse reads a "lat,lon" pair.
func Parse(s string) (LatLon, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return LatLon{}, fmt.Errorf("invalid position '%s': want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLon{}, fmt.Errorf("invalid latitude '%s': %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLon{}, fmt.Errorf("invalid longitude '%s': %w", parts[1], err)
	}
	return NewValidated(lat, lon)
}

func (p LatLon) Lat() float64 { return p.lat }
func (p LatLon) Lon() float64 { return p.lon }

func (p LatLon) String() string {
	return fmt.Sprintf("%.3f,%.3f", p.lat, p.lon)
}

func (p LatLon) AddLatitude(Δ float64) LatLon {
	return New(reflectLatitude(p.lat+Δ), p.lon)
}

func (p LatLon) SubtractLatitude(Δ float64) LatLon {
	return New(reflectLatitude(p.lat-Δ), p.lon)
}

func (p LatLon) AddLongitude(Δ float64) LatLon {
	return New(p.lat, reflectLongitude(p.lon+Δ))
}

func (p LatLon) SubtractLongitude(Δ float64) LatLon {
	return New(p.lat, reflectLongitude(p.lon-Δ))
}

func (p LatLon) IsSamePosition(o LatLon) bool {
	return p.lat == o.lat && p.lon == o.lon
}

func (p LatLon) IsSameLatitude(o LatLon) bool {
	return p.lat == o.lat
}

func (p LatLon) IsSameLongitude(o LatLon) bool {
	return p.lon == o.lon
}

type jsonLatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p LatLon) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonLatLon{Lat: p.lat, Lon: p.lon})
}

func (p *LatLon) UnmarshalJSON(b []byte) error {
	var j jsonLatLon
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*p = New(j.Lat, j.Lon)
	return nil
}
