// Package tcx extracts raw telemetry samples from Training Center XML
// (TCX) files. Only the scalar fields the gauge needs are pulled out;
// container concerns stay here so the telemetry model never sees XML.
package tcx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Njaaped/gauge-creator/internal/telemetry"
)

// ErrMalformedInput is returned when the source cannot be parsed as TCX at
// all, or contains no trackpoint data.
var ErrMalformedInput = errors.New("tcx: malformed input")

// Element names are matched by local name, so vendor namespace prefixes on
// the extension elements (ns3:TPX and friends) do not matter.
type document struct {
	Trackpoints []trackpoint `xml:"Activities>Activity>Lap>Track>Trackpoint"`
}

type trackpoint struct {
	Time       string     `xml:"Time"`
	HeartRate  *int       `xml:"HeartRateBpm>Value"`
	Cadence    *int       `xml:"Cadence"`
	Distance   *float64   `xml:"DistanceMeters"`
	Extensions extensions `xml:"Extensions"`
}

type extensions struct {
	TPX []tpx `xml:"TPX"`
}

type tpx struct {
	Watts *int `xml:"Watts"`
}

// Parse reads a TCX stream and returns its trackpoints as raw samples.
// Numeric fields default to zero when absent; distance stays nil when the
// trackpoint carries none. Trackpoints without a Time element are dropped
// here — the timestamp is the only field a sample cannot do without.
func Parse(r io.Reader) ([]telemetry.RawSample, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: not valid XML/TCX: %v", ErrMalformedInput, err)
	}
	if len(doc.Trackpoints) == 0 {
		return nil, fmt.Errorf("%w: no trackpoint data", ErrMalformedInput)
	}

	samples := make([]telemetry.RawSample, 0, len(doc.Trackpoints))
	for _, tp := range doc.Trackpoints {
		if tp.Time == "" {
			continue
		}
		s := telemetry.RawSample{
			Time:     tp.Time,
			Distance: tp.Distance,
		}
		if tp.HeartRate != nil {
			s.HeartRate = *tp.HeartRate
		}
		if tp.Cadence != nil {
			s.Cadence = *tp.Cadence
		}
		for _, e := range tp.Extensions.TPX {
			if e.Watts != nil {
				s.Power = *e.Watts
				break
			}
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// ParseFile opens and parses a TCX file.
func ParseFile(path string) ([]telemetry.RawSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tcx: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
