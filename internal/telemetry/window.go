package telemetry

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow is returned when a window's start is not strictly
// before its end.
var ErrInvalidWindow = errors.New("telemetry: window start must be before end")

// Window is a closed time interval used to slice a series. Both ends are
// normalized to UTC before any comparison; the series itself is stored in
// UTC, so mixed-zone comparisons would silently select wrong points.
type Window struct {
	Start time.Time
	End   time.Time
}

// UTC returns the window with both endpoints converted to UTC.
func (w Window) UTC() Window {
	return Window{Start: w.Start.UTC(), End: w.End.UTC()}
}

// Validate checks that the window is well-formed.
func (w Window) Validate() error {
	if !w.Start.Before(w.End) {
		return fmt.Errorf("%w: start=%s end=%s", ErrInvalidWindow,
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}
	return nil
}

// Window text layouts accepted by ParseWindow. Zone-less layouts are
// interpreted in the caller's local zone and then converted to UTC.
var windowTimeLayouts = []struct {
	layout string
	local  bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
}

// ParseWindow builds a Window from start/end timestamp text. Zone-aware
// inputs are converted to UTC directly; zone-less inputs are interpreted
// as local time first.
func ParseWindow(start, end string) (Window, error) {
	s, err := parseWindowTime(start)
	if err != nil {
		return Window{}, fmt.Errorf("window start: %w", err)
	}
	e, err := parseWindowTime(end)
	if err != nil {
		return Window{}, fmt.Errorf("window end: %w", err)
	}
	w := Window{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func parseWindowTime(s string) (time.Time, error) {
	for _, l := range windowTimeLayouts {
		var t time.Time
		var err error
		if l.local {
			t, err = time.ParseInLocation(l.layout, s, time.Local)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
