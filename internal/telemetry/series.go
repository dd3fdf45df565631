package telemetry

import (
	"errors"
	"time"

	"github.com/Njaaped/gauge-creator/internal/monitoring"
)

// ErrEmptySeries is returned when no raw sample survives timestamp
// normalization. A series with zero points must not be constructed.
var ErrEmptySeries = errors.New("telemetry: no valid trackpoints in series")

// Timestamp layouts accepted for raw samples: UTC with a literal "Z"
// suffix, with and without a sub-second fraction.
var sampleTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05Z",
}

// Series is an ordered, validated sequence of trackpoints. Start and End
// are the timestamps of the first and last point.
type Series struct {
	Points []Trackpoint
	Start  time.Time
	End    time.Time
}

// BuildSeries turns raw samples into a Series. Samples whose timestamp
// matches neither accepted layout are skipped with a warning; everything
// else is kept in input order. Speed is derived in a single forward pass:
// the first point gets 0, and each later point gets the distance delta over
// the time delta when both distances are known and time advanced, otherwise
// it inherits the previous point's speed.
//
// The input is assumed already ordered by time; ties are allowed.
func BuildSeries(raw []RawSample) (*Series, error) {
	points := make([]Trackpoint, 0, len(raw))

	for _, s := range raw {
		ts, ok := parseSampleTime(s.Time)
		if !ok {
			monitoring.Warnf("skipping trackpoint with unparsable time: %q", s.Time)
			continue
		}
		points = append(points, Trackpoint{
			Time:      ts,
			Power:     s.Power,
			HeartRate: s.HeartRate,
			Cadence:   s.Cadence,
			Distance:  s.Distance,
		})
	}

	if len(points) == 0 {
		return nil, ErrEmptySeries
	}

	deriveSpeeds(points)

	return &Series{
		Points: points,
		Start:  points[0].Time,
		End:    points[len(points)-1].Time,
	}, nil
}

// parseSampleTime parses a raw timestamp string against the accepted
// layouts. The result is always in UTC.
func parseSampleTime(s string) (time.Time, bool) {
	for _, layout := range sampleTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// deriveSpeeds fills in Speed for each point. Each point's speed depends
// only on the immediately preceding point.
func deriveSpeeds(points []Trackpoint) {
	for i := range points {
		if i == 0 {
			points[i].Speed = 0
			continue
		}
		prev := &points[i-1]
		cur := &points[i]
		if cur.Distance != nil && prev.Distance != nil {
			if dt := cur.Time.Sub(prev.Time).Seconds(); dt > 0 {
				cur.Speed = (*cur.Distance - *prev.Distance) / dt
				continue
			}
		}
		cur.Speed = prev.Speed
	}
}
