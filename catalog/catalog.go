// Package catalog resolves location names to positions, from a CSV file of
// airports or from the built-in reference table.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-cpa/latlon"
)

var ErrUnknownLocation = errors.New("unknown location")

// Resolver turns a location name into a position.
type Resolver interface {
	Resolve(name string) (latlon.LatLon, error)
}

type Location struct {
	Code   string        `json:"code"`
	Name   string        `json:"name"`
	LatLon latlon.LatLon `json:"latlon"`
}

var header = []string{"code", "name", "latitude", "longitude"}

// Catalog is a read-only set of locations keyed by code and by name, both
// case-insensitive.
type Catalog struct {
	locations []Location
	index     map[string]int
}

func key(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Load reads a catalog from a CSV file.
func Load(file string) (*Catalog, error) {
	f, err := os.Open(file)
	if err != nil {
		log.WithError(err).Errorf("Error opening catalog '%s'", file)
		return nil, err
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("catalog '%s': %w", file, err)
	}

	log.Debugf("Loaded %d locations from '%s'", len(c.locations), file)
	return c, nil
}

// Read parses CSV with a code,name,latitude,longitude header row.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	first, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty catalog")
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(first[i]), h) {
			return nil, fmt.Errorf("bad header '%s', want '%s'", strings.Join(first, ","), strings.Join(header, ","))
		}
	}

	c := &Catalog{index: make(map[string]int)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		lat, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: latitude: %w", line, err)
		}
		lon, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: longitude: %w", line, err)
		}
		ll, err := latlon.NewValidated(lat, lon)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		code := key(record[0])
		if code == "" {
			return nil, fmt.Errorf("line %d: empty code", line)
		}
		if _, found := c.index[code]; found {
			return nil, fmt.Errorf("line %d: duplicate code '%s'", line, code)
		}

		c.locations = append(c.locations, Location{Code: code, Name: strings.TrimSpace(record[1]), LatLon: ll})
		i := len(c.locations) - 1
		c.index[code] = i
		if name := key(record[1]); name != "" {
			if _, found := c.index[name]; !found {
				c.index[name] = i
			}
		}
	}

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.locations)
}

// Lookup returns the location registered under a code or a name.
func (c *Catalog) Lookup(name string) (Location, bool) {
	i, found := c.index[key(name)]
	if !found {
		return Location{}, false
	}
	return c.locations[i], true
}

func (c *Catalog) Resolve(name string) (latlon.LatLon, error) {
	l, found := c.Lookup(name)
	if !found {
		return latlon.LatLon{}, fmt.Errorf("%w: '%s'", ErrUnknownLocation, name)
	}
	return l.LatLon, nil
}

// Codes returns every code, sorted.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.locations))
	for _, l := range c.locations {
		codes = append(codes, l.Code)
	}
	sort.Strings(codes)
	return codes
}

type Ranked struct {
	Location
	Distance float64 `json:"distance"`
}

// Nearest returns the n locations closest to origin, nearest first. n <= 0
// returns them all.
func (c *Catalog) Nearest(origin latlon.LatLon, n int) []Ranked {
	positions := make([]latlon.LatLon, len(c.locations))
	for i, l := range c.locations {
		positions[i] = l.LatLon
	}
	distances := latlon.DistancesFrom(origin, positions)

	ranked := make([]Ranked, len(c.locations))
	for i, l := range c.locations {
		ranked[i] = Ranked{Location: l, Distance: distances[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
