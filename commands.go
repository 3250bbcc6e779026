package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-cpa/catalog"
	"github.com/a-bouts/nav-cpa/cpa"
	"github.com/a-bouts/nav-cpa/latlon"
)

var errUsage = errors.New("usage")

type env struct {
	resolver catalog.Resolver
	catalog  *catalog.Catalog
	expes    map[string]bool
	nearest  int
	out      io.Writer
}

type command struct {
	usage string
	args  int
	run   func(e env, a *args) (interface{}, error)
}

var commands = map[string]command{
	"distance": {"A B              great-circle distance (nm)", 2, func(e env, a *args) (interface{}, error) {
		type result struct {
			From     latlon.LatLon `json:"from"`
			To       latlon.LatLon `json:"to"`
			Distance float64       `json:"distance"`
		}
		from, to := a.position(0), a.position(1)
		if a.err != nil {
			return nil, a.err
		}
		return result{From: from, To: to, Distance: latlon.Distance(from, to)}, nil
	}},
	"bearing": {"A B              initial and final bearing", 2, func(e env, a *args) (interface{}, error) {
		type result struct {
			Initial float64 `json:"initial"`
			Final   float64 `json:"final"`
		}
		from, to := a.position(0), a.position(1)
		if a.err != nil {
			return nil, a.err
		}
		return result{Initial: latlon.Bearing(from, to), Final: latlon.FinalBearing(from, to)}, nil
	}},
	"relative": {"A HEADING B      bearing of B relative to heading", 3, func(e env, a *args) (interface{}, error) {
		type result struct {
			RelativeBearing float64 `json:"relativeBearing"`
		}
		from, heading, to := a.position(0), a.float(1), a.position(2)
		if a.err != nil {
			return nil, a.err
		}
		return result{RelativeBearing: latlon.RelativeBearing(from, heading, to)}, nil
	}},
	"midpoint": {"A B              great-circle midpoint", 2, func(e env, a *args) (interface{}, error) {
		p1, p2 := a.position(0), a.position(1)
		if a.err != nil {
			return nil, a.err
		}
		return latlon.Midpoint(p1, p2), nil
	}},
	"intermediate": {"A B FRACTION     point at a fraction of the way", 3, func(e env, a *args) (interface{}, error) {
		p1, p2, f := a.position(0), a.position(1), a.float(2)
		if a.err != nil {
			return nil, a.err
		}
		return latlon.IntermediatePoint(p1, p2, f)
	}},
	"destination": {"A COURSE NM      position after a distance on a course", 3, func(e env, a *args) (interface{}, error) {
		start, course, distance := a.position(0), a.float(1), a.float(2)
		if a.err != nil {
			return nil, a.err
		}
		return latlon.Destination(start, course, distance), nil
	}},
	"project": {"A COURSE KT H    position after hours at speed on a course", 4, func(e env, a *args) (interface{}, error) {
		start, course, speed, hours := a.position(0), a.float(1), a.float(2), a.float(3)
		if a.err != nil {
			return nil, a.err
		}
		return latlon.CourseSpeedTime(start, course, speed, hours), nil
	}},
	"cpa": {"A C S B C S      closest point of approach of two tracks", 6, func(e env, a *args) (interface{}, error) {
		own := cpa.Track{Position: a.position(0), Course: a.float(1), Speed: a.float(2)}
		target := cpa.Track{Position: a.position(3), Course: a.float(4), Speed: a.float(5)}
		if a.err != nil {
			return nil, a.err
		}
		r := cpa.Compute(own, target)
		log.WithFields(log.Fields{"status": r.Status, "time": r.Time().Round(time.Second)}).Debug("CPA")
		return r, nil
	}},
	"northernmost": {"A B              vertex of the great circle", 2, func(e env, a *args) (interface{}, error) {
		p1, p2 := a.position(0), a.position(1)
		if a.err != nil {
			return nil, a.err
		}
		return latlon.NorthernmostPoint(p1, p2)
	}},
	"crossings": {"A B              equator crossings of the great circle", 2, func(e env, a *args) (interface{}, error) {
		p1, p2 := a.position(0), a.position(1)
		if a.err != nil {
			return nil, a.err
		}
		c1, c2, err := latlon.EquatorCrossings(p1, p2)
		if err != nil {
			return nil, err
		}
		return []latlon.LatLon{c1, c2}, nil
	}},
	"intersection": {"A BRG B BRG      crossing of two great circles (experimental)", 4, func(e env, a *args) (interface{}, error) {
		p1, b1, p2, b2 := a.position(0), a.float(1), a.position(2), a.float(3)
		if a.err != nil {
			return nil, a.err
		}
		return latlon.Intersection(e.expes, p1, b1, p2, b2)
	}},
	"side": {"START END P      side of the line START->END where P lies", 3, func(e env, a *args) (interface{}, error) {
		type result struct {
			Left  bool `json:"left"`
			Right bool `json:"right"`
		}
		start, end, p := a.position(0), a.position(1), a.position(2)
		if a.err != nil {
			return nil, a.err
		}
		return result{Left: p.IsLeftOf(start, end), Right: p.IsRightOf(start, end)}, nil
	}},
	"nearest": {"A                catalog locations nearest to A", 1, func(e env, a *args) (interface{}, error) {
		if e.catalog == nil {
			return nil, errors.New("nearest needs a catalog, see -catalog")
		}
		origin := a.position(0)
		if a.err != nil {
			return nil, a.err
		}
		return e.catalog.Nearest(origin, e.nearest), nil
	}},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// args converts command arguments, keeping the first error.
type args struct {
	values   []string
	resolver catalog.Resolver
	err      error
}

func (a *args) position(i int) latlon.LatLon {
	if a.err != nil {
		return latlon.LatLon{}
	}
	ll, err := a.resolver.Resolve(a.values[i])
	if err != nil {
		a.err = err
	}
	return ll
}

func (a *args) float(i int) float64 {
	if a.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(a.values[i], 64)
	if err != nil {
		a.err = fmt.Errorf("invalid number '%s'", a.values[i])
	}
	return f
}

func (e env) run(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	c, found := commands[argv[0]]
	if !found {
		return fmt.Errorf("%w: unknown command '%s'", errUsage, argv[0])
	}
	if len(argv)-1 != c.args {
		return fmt.Errorf("%w: %s %s", errUsage, argv[0], c.usage)
	}

	start := time.Now()

	a := &args{values: argv[1:], resolver: e.resolver}
	res, err := c.run(e, a)
	if err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}

	log.WithFields(log.Fields{"command": argv[0]}).Debugf("took %s", time.Since(start))

	return json.NewEncoder(e.out).Encode(res)
}
