// Package telemetry models a recorded workout as an ordered, UTC-normalized
// sequence of trackpoints and provides time-window slicing over it.
package telemetry

import "time"

// RawSample is one sample as extracted from a source container (TCX or
// similar). Only the timestamp is required; the numeric fields default to
// zero and Distance may be absent entirely.
type RawSample struct {
	Time      string   // timestamp text, UTC with a literal "Z" suffix
	Power     int      // watts
	HeartRate int      // bpm
	Cadence   int      // rpm
	Distance  *float64 // cumulative meters, nil when the sample carries none
}

// Trackpoint is a single normalized telemetry sample. Sequences of
// trackpoints are immutable once built and non-decreasing in Time.
type Trackpoint struct {
	Time      time.Time `json:"time"`
	Power     int       `json:"power"`
	HeartRate int       `json:"hr"`
	Cadence   int       `json:"cadence"`
	Distance  *float64  `json:"distance,omitempty"`
	Speed     float64   `json:"speed"` // m/s, derived from distance deltas
}
