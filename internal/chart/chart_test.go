package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Njaaped/gauge-creator/internal/telemetry"
)

func segment(n int) []telemetry.Trackpoint {
	base := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
	pts := make([]telemetry.Trackpoint, n)
	for i := range pts {
		pts[i] = telemetry.Trackpoint{
			Time:      base.Add(time.Duration(i) * time.Second),
			Power:     150 + i,
			HeartRate: 120 + i,
		}
	}
	return pts
}

func TestWriteSegmentPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segment.png")

	if err := WriteSegmentPNG(segment(30), path); err != nil {
		t.Fatalf("WriteSegmentPNG() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestWriteSegmentPNGEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segment.png")
	if err := WriteSegmentPNG(nil, path); err == nil {
		t.Fatal("expected error for empty segment")
	}
}

func TestWriteSegmentPNGSinglePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segment.png")
	if err := WriteSegmentPNG(segment(1), path); err != nil {
		t.Fatalf("WriteSegmentPNG() error = %v", err)
	}
}
