package telemetry

import (
	"errors"
	"testing"
	"time"
)

func TestWindowValidate(t *testing.T) {
	base := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		w       Window
		wantErr bool
	}{
		{"valid", Window{Start: base, End: base.Add(time.Minute)}, false},
		{"start equals end", Window{Start: base, End: base}, true},
		{"start after end", Window{Start: base.Add(time.Hour), End: base}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("Validate() error = %v, want ErrInvalidWindow", err)
			}
		})
	}
}

func TestWindowUTCNormalization(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	w := Window{
		Start: time.Date(2026, 5, 10, 16, 0, 0, 0, loc), // 14:00 UTC
		End:   time.Date(2026, 5, 10, 17, 0, 0, 0, loc), // 15:00 UTC
	}

	u := w.UTC()
	if u.Start.Location() != time.UTC || u.End.Location() != time.UTC {
		t.Fatalf("UTC() did not normalize locations: %v / %v", u.Start.Location(), u.End.Location())
	}
	if u.Start.Hour() != 14 || u.End.Hour() != 15 {
		t.Errorf("UTC() hours = %d/%d, want 14/15", u.Start.Hour(), u.End.Hour())
	}
}

func TestParseWindow(t *testing.T) {
	t.Run("rfc3339 with offset", func(t *testing.T) {
		w, err := ParseWindow("2026-05-10T16:00:00+02:00", "2026-05-10T17:00:00+02:00")
		if err != nil {
			t.Fatalf("ParseWindow() error = %v", err)
		}
		if w.Start.Location() != time.UTC {
			t.Errorf("start location = %v, want UTC", w.Start.Location())
		}
		if w.Start.Hour() != 14 {
			t.Errorf("start hour = %d, want 14 (UTC)", w.Start.Hour())
		}
	})

	t.Run("zone-less interpreted as local", func(t *testing.T) {
		w, err := ParseWindow("2026-05-10 14:00:00", "2026-05-10 15:00:00")
		if err != nil {
			t.Fatalf("ParseWindow() error = %v", err)
		}
		wantStart := time.Date(2026, 5, 10, 14, 0, 0, 0, time.Local).UTC()
		if !w.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", w.Start, wantStart)
		}
		if w.Start.Location() != time.UTC {
			t.Errorf("start location = %v, want UTC", w.Start.Location())
		}
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		_, err := ParseWindow("2026-05-10T15:00:00Z", "2026-05-10T14:00:00Z")
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("error = %v, want ErrInvalidWindow", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := ParseWindow("yesterday", "today"); err == nil {
			t.Error("expected error for unrecognized timestamps")
		}
	})
}
