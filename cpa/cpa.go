// Package cpa predicts the closest point of approach between two vessels
// holding constant course and speed.
package cpa

import (
	"fmt"
	"math"
	"time"

	"github.com/a-bouts/nav-cpa/latlon"
)

// MinRelativeSpeed in knots, below which the two tracks are considered to
// move together.
const MinRelativeSpeed = 1e-6

type Status int

const (
	Valid Status = iota
	Receding
	NoRelativeMotion
)

var statusNames = map[Status]string{
	Valid:            "valid",
	Receding:         "receding",
	NoRelativeMotion: "no-relative-motion",
}

func (s Status) String() string {
	if n, found := statusNames[s]; found {
		return n
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for k, n := range statusNames {
		if n == string(b) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown cpa status '%s'", b)
}

// Track is a position with a course in degrees and a speed in knots.
type Track struct {
	Position latlon.LatLon `json:"position"`
	Course   float64       `json:"course"`
	Speed    float64       `json:"speed"`
}

// Result of a CPA computation. Only a Valid result predicts an encounter;
// otherwise Position is the own position, DistanceToCPA and RangeAtCPA hold
// the current range and ElapsedTime is 0.
type Result struct {
	Position      latlon.LatLon `json:"position"`
	DistanceToCPA float64       `json:"distanceToCpa"`
	ElapsedTime   float64       `json:"elapsedTime"`
	RangeAtCPA    float64       `json:"rangeAtCpa"`
	Status        Status        `json:"status"`
}

// Time is ElapsedTime as a duration.
func (r Result) Time() time.Duration {
	return time.Duration(r.ElapsedTime * float64(time.Second))
}

func noCPA(own latlon.LatLon, rangeToTarget float64, status Status) Result {
	return Result{
		Position:      own,
		DistanceToCPA: rangeToTarget,
		RangeAtCPA:    rangeToTarget,
		Status:        status,
	}
}

func toRadians(a float64) float64 {
	return a * math.Pi / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / math.Pi
}

// Compute classifies the encounter between own and target.
func Compute(own, target Track) Result {
	// Own velocity seen from the target, in a frame whose x axis is the
	// target's heading.
	Δc := toRadians(own.Course - target.Course)
	relVx := own.Speed*math.Cos(Δc) - target.Speed
	relVy := own.Speed * math.Sin(Δc)
	relVelocity := math.Hypot(relVx, relVy)

	rangeToTarget := latlon.Distance(own.Position, target.Position)

	if relVelocity < MinRelativeSpeed {
		return noCPA(own.Position, rangeToTarget, NoRelativeMotion)
	}

	relCourse := target.Course + toDegrees(math.Atan2(relVy, relVx))
	rb := latlon.RelativeBearing(own.Position, relCourse, target.Position)
	if math.Abs(rb) > 90 {
		return noCPA(own.Position, rangeToTarget, Receding)
	}

	hours := rangeToTarget * math.Cos(toRadians(rb)) / relVelocity
	rangeAtCPA := math.Abs(rangeToTarget * math.Sin(toRadians(rb)))

	return Result{
		Position:      latlon.CourseSpeedTime(own.Position, own.Course, own.Speed, hours),
		DistanceToCPA: hours * own.Speed,
		ElapsedTime:   hours * latlon.SecondsPerHour,
		RangeAtCPA:    rangeAtCPA,
		Status:        Valid,
	}
}
